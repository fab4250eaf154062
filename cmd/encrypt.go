/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/bgallie/enigma/enigma"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
)

const (
	pemBlockType = "ENIGMA Encrypted Message"
	headerTag    = "+ENIGMA"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt plaintext using the Enigma machine",
	Long: `Encrypt plaintext using the configured Enigma machine.  Letters are
folded to upper case; everything else is dropped.  The ciphertext is written in
groups of letters, optionally compressed and armored with PEM or ASCII85.`,
	Run: func(cmd *cobra.Command, args []string) {
		encrypt()
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode",
	Short:      "Encode plaintext using the Enigma machine",
	Long:       `[DEPRECATED] Encode plaintext using the configured Enigma machine.`,
	Deprecated: "use \"encrypt\" instead.",
	Run: func(cmd *cobra.Command, args []string) {
		encrypt()
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		c.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
		c.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
		c.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate")
	}
}

func encrypt() {
	m := initMachine()
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	cobra.CheckErr(writeCiphertext(fout, fin, m, currentLayout()))
	wg.Wait()
	logger.Info("encrypted", "letters", m.Index(), "window", m.Window())
}

// writeCiphertext encrypts fin onto fout.  Plain output is the grouped
// letters; compressed output is binary and is preceded by a header line
// unless it is PEM armored.
func writeCiphertext(fout io.Writer, fin io.Reader, m *enigma.Machine, l layout) error {
	encIn := cipherHelper(fin, m, l)
	if compression {
		encIn = fromBinaryHelper(flate.ToFlate(encIn))
	}
	var err error
	switch {
	case usePem:
		var blck pem.Block
		blck.Type = pemBlockType
		blck.Headers = make(map[string]string)
		blck.Headers["Compression"] = strconv.FormatBool(compression)
		blck.Headers["Group"] = strconv.Itoa(l.group)
		blck.Headers["Line"] = strconv.Itoa(l.line)
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encIn), blck))
	case useASCII85:
		if _, err = fmt.Fprintf(fout, "%s|a|%v\n", headerTag, compression); err != nil {
			return err
		}
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(encIn)))
	case compression:
		if _, err = fmt.Fprintf(fout, "%s|b|%v\n", headerTag, compression); err != nil {
			return err
		}
		_, err = io.Copy(fout, encIn)
	default:
		_, err = io.Copy(fout, encIn)
	}
	return err
}
