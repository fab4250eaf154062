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
	"os"

	"github.com/bgallie/enigma/enigma"
	"github.com/spf13/cobra"
)

var keysheetFrom string

// keysheetCmd represents the keysheet command
var keysheetCmd = &cobra.Command{
	Use:   "keysheet",
	Short: "Write the machine settings as a YAML key sheet.",
	Long: `Write the effective machine settings (flags, environment and config file
combined) as a YAML key sheet.  The sheet can be handed to --config to set up
an identical machine for decryption.  With --from, an existing sheet is
checked and rewritten instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		keysheet()
	},
}

func init() {
	rootCmd.AddCommand(keysheetCmd)
	keysheetCmd.Flags().StringVarP(&keysheetFrom, "from", "f", "", "key sheet to check and rewrite")
}

func keysheet() {
	var cfg enigma.Config
	if keysheetFrom != "" {
		f, err := os.Open(keysheetFrom)
		cobra.CheckErr(err)
		defer f.Close()
		cfg, err = enigma.LoadKeySheet(f)
		cobra.CheckErr(err)
	} else {
		cfg = initMachine().Config()
	}

	fout := os.Stdout
	if len(outputFileName) > 0 && outputFileName != "-" {
		var err error
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
		defer fout.Close()
	}
	cobra.CheckErr(cfg.WriteKeySheet(fout))
	logger.Debug("key sheet written", "settings", cfg.String())
}
