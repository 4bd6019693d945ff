// Command genvectors emits the reference digest table used by the engine
// test suite: the SHA-256 digest of the byte 'a' repeated i times, for every
// i in 1..=1024. Digests are computed with the standard library so the table
// is an independent oracle for the engine under test.
package main

import (
	"bytes"
	gosha256 "crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goastler/sha-256/logging"
	"github.com/spf13/cobra"
)

const vectorCount = 1024

var flagOut string

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: `Generate the 'a'-repeat reference digest table for the test suite`,
	Run: func(cmd *cobra.Command, args []string) {
		src := generate()
		if flagOut == "" {
			os.Stdout.Write(src)
			return
		}
		if err := os.WriteFile(flagOut, src, 0644); err != nil {
			logging.CPrint(logging.FATAL, "failed to write vector file", logging.LogFormat{"file": flagOut, "err": err})
		}
		logging.CPrint(logging.INFO, "wrote vector file", logging.LogFormat{"file": flagOut, "vectors": vectorCount})
	},
}

func generate() []byte {
	var buf bytes.Buffer
	buf.WriteString("package sha256_test\n\n")
	buf.WriteString("// Code generated by genvectors. DO NOT EDIT.\n\n")
	buf.WriteString("// repeatedAVectors[i-1] is the reference digest of the message consisting of\n")
	buf.WriteString("// the byte 'a' repeated i times, for i in 1..=1024.\n")
	fmt.Fprintf(&buf, "var repeatedAVectors = [%d]string{\n", vectorCount)

	msg := bytes.Repeat([]byte{'a'}, vectorCount)
	for i := 1; i <= vectorCount; i++ {
		digest := gosha256.Sum256(msg[:i])
		fmt.Fprintf(&buf, "\t%q,\n", hex.EncodeToString(digest[:]))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func main() {
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output file (default stdout)")
	if err := rootCmd.Execute(); err != nil {
		logging.CPrint(logging.FATAL, "fail on rootCmd.Execute", logging.LogFormat{"err": err})
	}
}
