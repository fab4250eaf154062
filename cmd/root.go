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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/bgallie/enigma/enigma"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	logger         = slog.New(slog.NewTextHandler(os.Stderr, nil))
	wg             sync.WaitGroup
	Version        string = "dev"
)

const (
	enigmaConfigFile = ".enigma"
	enigmaSuffix     = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "An Enigma rotor cipher machine",
	Long: `enigma simulates the Enigma rotor cipher machine.  Encryption and
decryption are the same operation: text encrypted with one set of machine
settings is recovered by running it through a machine with the same settings.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	def := enigma.DefaultConfig()
	parts := enigma.Components()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file to write the result to.")
	pf.StringSliceP("rotors", "r", def.Rotors, fmt.Sprintf("rotor types, left to right (%s)", strings.Join(parts.Rotors, ", ")))
	pf.StringP("positions", "w", def.Positions, "starting rotor positions, left to right")
	pf.StringP("reflector", "u", def.Reflector, fmt.Sprintf("reflector (%s)", strings.Join(parts.Reflectors, ", ")))
	pf.String("reflector-wiring", "", "custom reflector wiring, 26 letters in pairs; replaces --reflector")
	pf.String("stator", def.Stator, fmt.Sprintf("entry wheel (%s)", strings.Join(parts.Stators, ", ")))
	pf.StringP("plugboard", "b", def.Plugboard, `plugboard pairs, for example "MN AB"`)
	pf.Int("group", defaultGroup, "letters per group in the output")
	pf.Int("line", defaultLine, "letters per line in the output")
	pf.BoolP("verbose", "v", false, "log machine details to stderr")
	for _, name := range []string{"rotors", "positions", "reflector", "stator", "plugboard", "group", "line", "verbose"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}
	cobra.CheckErr(viper.BindPFlag("reflectorWiring", pf.Lookup("reflector-wiring")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(enigmaConfigFile)
	}

	viper.SetEnvPrefix("ENIGMA")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err != nil && cfgFile != "" {
		cobra.CheckErr(err)
	}

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err == nil {
		logger.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// machineConfig collects the machine settings from the flags, the
// environment and the config file, in that order of precedence.
func machineConfig() enigma.Config {
	return enigma.Config{
		Rotors:          viper.GetStringSlice("rotors"),
		Positions:       viper.GetString("positions"),
		Reflector:       viper.GetString("reflector"),
		ReflectorWiring: viper.GetString("reflectorWiring"),
		Stator:          viper.GetString("stator"),
		Plugboard:       viper.GetString("plugboard"),
	}
}

func initMachine() *enigma.Machine {
	cfg := machineConfig()
	m, err := enigma.New(cfg)
	cobra.CheckErr(err)
	logger.Debug("machine assembled", "settings", m.Config().String(), "window", m.Window())
	return m
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting data.  If input and/or output files names were given,
	then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encrypt bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if len(inputFileName) == 0 || inputFileName == "-" {
		fout = os.Stdout
	} else if encrypt {
		outputFileName = inputFileName + enigmaSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else if strings.HasSuffix(inputFileName, enigmaSuffix) {
		outputFileName = strings.TrimSuffix(inputFileName, enigmaSuffix)
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		fout = os.Stdout
	}
	logger.Debug("files selected", "input", inputFileName, "output", outputFileName)
	return fin, fout
}

// cipherHelper runs everything read from rdr through the machine and returns
// a reader for the grouped result.  The machine belongs to the helper's
// goroutine until the input is exhausted.
func cipherHelper(rdr io.Reader, m *enigma.Machine, l layout) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		gw := newGroupWriter(rWrtr, l)
		st, err := m.Process(rdr, gw.WriteLetter)
		if cerr := gw.Close(); err == nil {
			err = cerr
		}
		logger.Debug("text processed", "letters", st.Letters, "skipped", st.Skipped, "window", m.Window())
		rWrtr.CloseWithError(err)
	}()
	return rRdr
}

// fromBinaryHelper provides the means to inject the pure binary input
// into the pipe stream used by the decrypt() function.  The data can
// be read using the returned PipeReader.
func fromBinaryHelper(rdr io.Reader) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := io.Copy(rWrtr, rdr)
		rWrtr.CloseWithError(err)
	}()
	return rRdr
}
