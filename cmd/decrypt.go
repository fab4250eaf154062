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
	"strings"

	"github.com/bgallie/enigma/enigma"
	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt Enigma ciphertext.",
	Long: `Decrypt ciphertext produced by "enigma encrypt".  The machine must be set
up exactly as it was for encryption.  PEM, ASCII85 and compressed input are
recognised from their headers.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt()
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode",
	Short:      "Decode Enigma ciphertext.",
	Long:       `[DEPRECATED] Decode ciphertext produced by "enigma encrypt".`,
	Deprecated: "use \"decrypt\" instead.",
	Run: func(cmd *cobra.Command, args []string) {
		decrypt()
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
}

func decrypt() {
	m := initMachine()
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()
	cobra.CheckErr(readCiphertext(fout, fin, m, currentLayout()))
	wg.Wait() // Wait for the machine to finish it's clean up.
	logger.Info("decrypted", "letters", m.Index(), "window", m.Window())
}

// readCiphertext undoes whatever armor and compression writeCiphertext
// applied and decrypts the letters onto fout.
func readCiphertext(fout io.Writer, fin io.Reader, m *enigma.Machine, l layout) error {
	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(5)
	if err != nil && err != io.EOF {
		return err
	}

	var src *io.PipeReader
	compressed := false
	switch {
	case string(b) == "-----":
		var blck pem.Block
		src, blck = pem.FromPem(bRdr)
		compressed = blck.Headers["Compression"] == "true"
		logger.Debug("pem armor", "type", blck.Type, "group", blck.Headers["Group"], "line", blck.Headers["Line"])
	case string(b) == headerTag[:5]:
		line, err := bRdr.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading header: %w", err)
		}
		fields := strings.Split(strings.TrimSpace(line), "|")
		if len(fields) != 3 || fields[0] != headerTag {
			return fmt.Errorf("malformed header %q", strings.TrimSpace(line))
		}
		compressed = fields[2] == "true"
		if fields[1] == "a" {
			src = ascii85.FromASCII85(lines.CombineLines(bRdr))
		} else {
			src = fromBinaryHelper(bRdr)
		}
	default:
		src = fromBinaryHelper(bRdr)
	}

	if compressed {
		src = flate.FromFlate(src)
	}
	_, err = io.Copy(fout, cipherHelper(src, m, l))
	return err
}
