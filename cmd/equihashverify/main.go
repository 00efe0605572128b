// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"flag"
	"os"

	"github.com/dblokhin/equihash/equihash"

	"github.com/sirupsen/logrus"
)

func init() {
	// Output to stdout instead of the default stderr.
	logrus.SetOutput(os.Stdout)

	// Only log the warning severity or above.
	logrus.SetLevel(logrus.WarnLevel)
}

func main() {
	n := flag.Int("n", equihash.Zcash.N, "equihash N parameter")
	k := flag.Int("k", equihash.Zcash.K, "equihash K parameter")
	headerHex := flag.String("header", "", "hex-encoded 140-byte block header (108-byte prefix + 32-byte nonce)")
	solutionHex := flag.String("solution", "", "hex-encoded minimally-encoded solution")
	verbose := flag.Bool("v", false, "log verification detail")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if *headerHex == "" || *solutionHex == "" {
		logrus.Error("-header and -solution are required")
		flag.Usage()
		os.Exit(2)
	}

	header, err := hex.DecodeString(*headerHex)
	if err != nil {
		logrus.WithError(err).Fatal("invalid -header")
	}
	solution, err := hex.DecodeString(*solutionHex)
	if err != nil {
		logrus.WithError(err).Fatal("invalid -solution")
	}

	logrus.WithFields(logrus.Fields{"n": *n, "k": *k}).Info("verifying equihash proof of work")

	ok, err := equihash.Verify(*n, *k, header, solution)
	if err != nil {
		logrus.WithError(err).Error("verification failed")
	}
	if !ok {
		os.Exit(1)
	}

	logrus.Info("valid proof of work")
}
