package chain

import (
	"bytes"
	"fmt"
)

// solc appends CBOR encoded metadata to runtime bytecode. The compiler
// version is the text key "solc" followed by a 3 byte string.
var solcKey = []byte{0x64, 's', 'o', 'l', 'c'}

func solcVersion(code []byte) (string, error) {
	i := bytes.LastIndex(code, solcKey)
	if i < 0 {
		return "", fmt.Errorf("no solc metadata")
	}
	rest := code[i+len(solcKey):]
	if len(rest) < 4 || rest[0] != 0x43 {
		return "", fmt.Errorf("malformed solc metadata")
	}
	return fmt.Sprintf("%d.%d.%d", rest[1], rest[2], rest[3]), nil
}
