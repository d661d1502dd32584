package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/zochwar/n64swap/convert"
	"github.com/zochwar/n64swap/rom"
)

// romTypeFlag is a pflag.Value for selecting the output encoding. It
// accepts the encoding names as well as the canonical extensions.
type romTypeFlag struct {
	value rom.Encoding
	set   bool
}

var _ pflag.Value = (*romTypeFlag)(nil)

func (f *romTypeFlag) String() string {
	if !f.set {
		return ""
	}

	return f.value.String()
}

func (f *romTypeFlag) Set(value string) error {
	switch strings.ToLower(strings.TrimPrefix(value, ".")) {
	case "bigendian", "z64":
		f.value = rom.BigEndian
	case "byteswapped", "byteswap", "v64":
		f.value = rom.ByteSwapped
	case "littleendian", "n64":
		f.value = rom.LittleEndian
	default:
		return errors.Errorf("unknown rom type %q, expected bigendian, byteswapped or littleendian", value)
	}

	f.set = true
	return nil
}

func (f *romTypeFlag) Type() string {
	return "romtype"
}

// deriveOutputName replaces a three letter dot extension on the input
// name with the canonical extension of the target encoding.
func deriveOutputName(inputName string, target rom.Encoding) string {
	var name = inputName

	if len(name) > 4 && name[len(name)-4] == '.' {
		name = name[:len(name)-4]
	}

	return name + target.Ext()
}

func run(inputName string, outputName string, romtype *romTypeFlag, identify bool, force bool) error {
	input, err := os.Open(inputName)

	if err != nil {
		return errors.Wrapf(err, "unable to open file %s", inputName)
	}

	defer input.Close()

	var opts = convert.Options{OutputName: outputName}

	if romtype.set {
		opts.Target = &romtype.value
	}

	conversion, err := convert.Begin(input, opts)

	if err == convert.ErrUnrecognizedFormat {
		return errors.Errorf("file %s not recognized", inputName)
	} else if err == convert.ErrTruncatedHeader {
		return errors.Errorf("file %s is too short to be a rom", inputName)
	} else if err != nil {
		return err
	}

	if identify {
		fmt.Printf("File %s is %v\n", inputName, conversion.Source())
		return nil
	}

	if conversion.NoOp() {
		fmt.Printf("File is already %v!\n", conversion.Target())
		return nil
	}

	if outputName == "" {
		outputName = deriveOutputName(inputName, conversion.Target())
	}

	if outputName == inputName {
		return errors.Errorf("input and output filenames are identical %s, consider renaming the input file", inputName)
	}

	var openFlags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC

	if !force {
		openFlags = os.O_CREATE | os.O_WRONLY | os.O_EXCL
	}

	output, err := os.OpenFile(outputName, openFlags, 0664)

	if err != nil {
		return errors.Wrapf(err, "unable to open file %s for output", outputName)
	}

	result, err := conversion.Run(output)
	closeErr := output.Close()

	if err != nil {
		return err
	} else if closeErr != nil {
		return errors.Wrapf(closeErr, "unable to finish writing %s", outputName)
	}

	klog.V(1).Infof("wrote %d words, dropped %d trailing bytes", result.Words, result.Dropped)
	fmt.Printf("Converted %s (%v) to %s (%v)\n", inputName, result.Source, outputName, result.Target)

	return nil
}

func newRootCommand() *cobra.Command {
	var romtype romTypeFlag
	var identify bool
	var force bool

	var cmd = &cobra.Command{
		Use:          "n64swap <input> [output]",
		Short:        "Convert N64 roms between byte orderings",
		Long:         "n64swap converts N64 rom images between the big endian (.z64),\nbyte swapped (.v64) and little endian (.n64) byte orderings.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputName string

			if len(args) == 2 {
				outputName = args[1]
			}

			return run(args[0], outputName, &romtype, identify, force)
		},
	}

	cmd.Flags().VarP(&romtype, "romtype", "t", "output rom type (bigendian, byteswapped, littleendian)")
	cmd.Flags().BoolVarP(&identify, "identify", "i", false, "identify rom type and exit")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	var klogFlags goflag.FlagSet
	klog.InitFlags(&klogFlags)
	cmd.Flags().AddGoFlag(klogFlags.Lookup("v"))

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
