// Command cesr computes and verifies SAIDs for JSON records from the
// command line.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/cesr/format"
	"github.com/arloliu/cesr/hashing"
	"github.com/arloliu/cesr/sad"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "cesr",
		Usage: "compute and verify Self-Addressing Identifiers for JSON records",
		Commands: []*cli.Command{
			genCommand,
			verifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("cesr command failed")
		os.Exit(1)
	}
}

var commonFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "said-field",
		Value: "d",
		Usage: "comma-separated JSON field name(s) that hold the SAID",
	},
	&cli.StringFlag{
		Name:  "algo",
		Value: "blake3-256",
		Usage: "digest algorithm: blake3-256, sha256, sha3-256, sha3-512, blake2b-256, blake2s-256",
	},
}

var genCommand = &cli.Command{
	Name:  "gen",
	Usage: "read a JSON record and write it back with its SAID computed",
	Flags: append(commonFlags, []cli.Flag{
		&cli.StringFlag{
			Name:  "version-field",
			Usage: "JSON field name holding the version string (enables versioned SAID)",
		},
		&cli.StringFlag{
			Name:  "protocol",
			Value: "CESR",
			Usage: "4-character protocol code for a versioned record",
		},
		&cli.StringFlag{
			Name:  "compress",
			Value: "none",
			Usage: "pack the sealed output for at-rest storage: none, zstd, s2, lz4",
		},
	}...),
	Action: func(c *cli.Context) error {
		raw, err := readInput(c)
		if err != nil {
			return err
		}

		algo, err := parseAlgorithm(c.String("algo"))
		if err != nil {
			return err
		}
		compression, err := parseCompression(c.String("compress"))
		if err != nil {
			return err
		}
		saidKeys := strings.Split(c.String("said-field"), ",")

		var rec sad.Record
		if vf := c.String("version-field"); vf != "" {
			info := sad.VersionInfo{Protocol: c.String("protocol"), Major: 1, Minor: 0, Format: sad.FormatJSON}
			rec, err = newGenericVersionedRecord(raw, saidKeys, vf, info)
		} else {
			rec, err = newGenericRecord(raw, saidKeys)
		}
		if err != nil {
			return err
		}

		s, err := sad.New(rec, sad.WithAlgorithm(algo), sad.WithCompression(compression))
		if err != nil {
			return err
		}

		if compression == format.CompressionNone {
			out, err := s.Seal()
			if err != nil {
				return fmt.Errorf("seal: %w", err)
			}

			fmt.Fprintln(c.App.Writer, string(out))

			return nil
		}

		out, err := s.SealCompressed()
		if err != nil {
			return fmt.Errorf("seal: %w", err)
		}

		if _, err := c.App.Writer.Write(out); err != nil {
			return fmt.Errorf("write compressed output: %w", err)
		}

		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "read a sealed JSON record and report whether its SAID still matches",
	Flags: append(commonFlags, []cli.Flag{
		&cli.StringFlag{
			Name:  "version-field",
			Usage: "JSON field name holding the version string (enables versioned SAID)",
		},
		&cli.StringFlag{
			Name:  "protocol",
			Value: "CESR",
			Usage: "4-character protocol code for a versioned record",
		},
	}...),
	Action: func(c *cli.Context) error {
		raw, err := readInput(c)
		if err != nil {
			return err
		}

		algo, err := parseAlgorithm(c.String("algo"))
		if err != nil {
			return err
		}
		saidKeys := strings.Split(c.String("said-field"), ",")

		var valid bool
		if vf := c.String("version-field"); vf != "" {
			info := sad.VersionInfo{Protocol: c.String("protocol"), Major: 1, Minor: 0, Format: sad.FormatJSON}
			rec, rerr := newGenericVersionedRecord(raw, saidKeys, vf, info)
			if rerr != nil {
				return rerr
			}
			valid, err = sad.VerifyVersioned(rec, algo)
		} else {
			rec, rerr := newGenericRecord(raw, saidKeys)
			if rerr != nil {
				return rerr
			}
			valid, err = sad.Verify(rec, algo)
		}
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		fmt.Fprintln(c.App.Writer, valid)
		if !valid {
			log.Warn("said did not verify")
			os.Exit(1)
		}

		return nil
	},
}

func readInput(c *cli.Context) ([]byte, error) {
	if path := c.Args().First(); path != "" {
		return os.ReadFile(path)
	}

	return io.ReadAll(os.Stdin)
}

func parseCompression(s string) (format.CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", s)
	}
}

func parseAlgorithm(s string) (hashing.Algorithm, error) {
	switch strings.ToLower(s) {
	case "blake3-256", "blake3_256":
		return hashing.Blake3_256, nil
	case "sha256", "sha2-256":
		return hashing.SHA2_256, nil
	case "sha3-256":
		return hashing.SHA3_256, nil
	case "sha3-512":
		return hashing.SHA3_512, nil
	case "blake2b-256":
		return hashing.Blake2b_256, nil
	case "blake2s-256":
		return hashing.Blake2s_256, nil
	case "sha512":
		return hashing.SHA2_512, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", s)
	}
}
