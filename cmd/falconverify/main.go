// Command falconverify decodes a serialized RPO Falcon-512 signature and
// verifies it against a message digest and a public key commitment.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"rpo-falcon512/falcon"
	"rpo-falcon512/rpo"
)

// parseWord reads a 4-element digest from 64 hex characters, 8 bytes per
// element, little-endian.
func parseWord(s string) (rpo.Word, error) {
	var w rpo.Word
	raw, err := hex.DecodeString(s)
	if err != nil {
		return w, err
	}
	if len(raw) != 32 {
		return w, fmt.Errorf("digest is %d bytes, want 32", len(raw))
	}
	for i := range w {
		v := binary.LittleEndian.Uint64(raw[8*i:])
		if v >= rpo.Modulus {
			return w, fmt.Errorf("element %d out of range", i)
		}
		w[i] = rpo.Elem(v)
	}
	return w, nil
}

func main() {
	sigPath := flag.String("sig", "", "path to the 1563-byte serialized signature")
	msgHex := flag.String("msg", "", "message digest, 64 hex characters (4 little-endian field elements)")
	comHex := flag.String("com", "", "public key commitment, 64 hex characters; defaults to the digest of the embedded key")
	flag.Parse()

	if *sigPath == "" || *msgHex == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*sigPath)
	if err != nil {
		log.Fatalf("read signature: %v", err)
	}
	sig, err := falcon.DecodeSignature(data)
	if err != nil {
		log.Fatalf("decode signature: %v", err)
	}

	message, err := parseWord(*msgHex)
	if err != nil {
		log.Fatalf("parse message digest: %v", err)
	}

	var com rpo.Word
	if *comHex != "" {
		if com, err = parseWord(*comHex); err != nil {
			log.Fatalf("parse commitment: %v", err)
		}
	} else {
		com = sig.PublicKeyCommitment()
		fmt.Printf("using embedded key digest as commitment: %s\n", formatWord(com))
	}

	if sig.Verify(message, com) {
		fmt.Println("signature: VALID")
		return
	}
	fmt.Println("signature: INVALID")
	os.Exit(1)
}

func formatWord(w rpo.Word) string {
	var raw [32]byte
	for i, e := range w {
		binary.LittleEndian.PutUint64(raw[8*i:], uint64(e))
	}
	return hex.EncodeToString(raw[:])
}
