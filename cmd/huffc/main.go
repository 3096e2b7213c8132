package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/codetable/huffc"
)

const progName = "huffc"
const usageMessageRaw = `
Usage: huffc [-d] SUBCOMMAND...

Subcommands:
  compress SRC DEST
    Compress the file SRC and write the resulting blob to the new file
    DEST.  DEST must not already exist.

  extract SRC DEST
    Extract a huffc-compressed file SRC and write the recovered bytes to
    the new file DEST.  DEST must not already exist.

Options:
  -d    enable debug logging
`

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:6s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// createNew opens dest for writing, refusing to clobber an existing file.
func createNew(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
}

func writeAll(path string, data []byte) error {
	destFile, err := createNew(path)
	if err != nil {
		return err
	}
	_, err = destFile.Write(data)
	if closeErr := destFile.Close(); err == nil {
		err = closeErr
	}
	return err
}

func compressFile(src, dest string) error {
	tokens, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	log.Debugf("read %d bytes from %s", len(tokens), src)

	codec := huffc.NewCodec[byte](huffc.WithParallelism(runtime.NumCPU()))
	blob, err := codec.Compress(tokens)
	if err != nil {
		return err
	}
	if err := writeAll(dest, blob); err != nil {
		return err
	}

	p := message.NewPrinter(language.English) // For commas between thousands
	ratio := float64(0)
	if len(tokens) > 0 {
		ratio = float64(len(blob)) / float64(len(tokens))
	}
	log.Infof("%s", p.Sprintf("compressed %d bytes to %d bytes (%.1f%%)",
		len(tokens), len(blob), ratio*100))
	return nil
}

func extractFile(src, dest string) error {
	blob, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	log.Debugf("read %d blob bytes from %s", len(blob), src)

	codec := huffc.NewCodec[byte]()
	tokens, err := codec.Extract(blob)
	if err != nil {
		return err
	}
	if err := writeAll(dest, tokens); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	log.Infof("%s", p.Sprintf("extracted %d bytes from %d blob bytes", len(tokens), len(blob)))
	return nil
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	var err error
	subcommand := nextArg("SUBCOMMAND")
	switch subcommand {
	default:
		usageErrorf("bad subcommand \"%s\"", subcommand)
	case "compress":
		src := nextArg("SRC")
		dest := nextArg("DEST")
		endOfArgs()
		err = compressFile(src, dest)
	case "extract":
		src := nextArg("SRC")
		dest := nextArg("DEST")
		endOfArgs()
		err = extractFile(src, dest)
	}

	if err != nil {
		exitError(err)
	}
}
