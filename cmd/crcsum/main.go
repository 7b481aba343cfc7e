// Command crcsum computes CRC-32/ISCSI or CRC-32/ISO-HDLC checksums of files
// or standard input, and can report the selected code path or measure
// throughput over random data.
package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hashfold/crc32fold"
)

var (
	algoFlag   string
	showTarget bool
	benchSize  string
)

func main() {
	cmd := &cobra.Command{
		Use:   "crcsum [file ...]",
		Short: "compute CRC-32/ISCSI or CRC-32/ISO-HDLC checksums",
		Long: `crcsum computes CRC-32 checksums of the named files, or of standard
input when no files are given (or when a file is "-").`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVarP(&algoFlag, "algorithm", "a", "iso-hdlc", `checksum variant: "iscsi" or "iso-hdlc"`)
	cmd.Flags().BoolVar(&showTarget, "target", false, "print the selected target descriptor and exit")
	cmd.Flags().StringVar(&benchSize, "bench", "", "measure throughput over a random buffer of the given size (e.g. 64MiB)")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "crcsum:", err)
		os.Exit(1)
	}
}

func parseAlgorithm(s string) (crc32fold.Algorithm, error) {
	switch s {
	case "iscsi", "crc32c":
		return crc32fold.ISCSI, nil
	case "iso-hdlc", "crc32":
		return crc32fold.ISOHDLC, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

func run(cmd *cobra.Command, args []string) error {
	alg, err := parseAlgorithm(algoFlag)
	if err != nil {
		return err
	}
	if showTarget {
		fmt.Println(crc32fold.Target(alg))
		return nil
	}
	if benchSize != "" {
		return runBench(alg, benchSize)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if path == "-" {
			if err := sumStream(alg, os.Stdin, "-"); err != nil {
				return err
			}
			continue
		}
		crc, err := crc32fold.ChecksumFile(alg, path)
		if err != nil {
			return err
		}
		fmt.Printf("%08x  %s\n", crc, path)
	}
	return nil
}

func sumStream(alg crc32fold.Algorithm, r io.Reader, name string) error {
	d := crc32fold.New(alg)
	if _, err := io.Copy(d, r); err != nil {
		return err
	}
	fmt.Printf("%08x  %s\n", d.Sum32(), name)
	return nil
}

func runBench(alg crc32fold.Algorithm, size string) error {
	n, err := humanize.ParseBytes(size)
	if err != nil {
		return fmt.Errorf("invalid --bench size %q: %w", size, err)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	var (
		crc    uint32
		rounds uint64
		start  = time.Now()
	)
	for time.Since(start) < time.Second {
		crc = crc32fold.Update(alg, crc, buf)
		rounds++
	}
	elapsed := time.Since(start)
	total := rounds * n
	rate := uint64(float64(total) / elapsed.Seconds())
	fmt.Printf("%s %08x\n", alg, crc)
	fmt.Printf("%s in %s, %s/s, %s\n",
		humanize.IBytes(total), elapsed.Round(time.Millisecond),
		humanize.IBytes(rate), crc32fold.Target(alg))
	return nil
}
