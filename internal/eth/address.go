package eth

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ChecksumAddress returns the EIP-55 checksum-cased form of the given account
// address. Addresses that already carry the checksum casing are returned
// unchanged, since the canonical form is its own fixed point.
func ChecksumAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("'%s' is not a well-formed Ethereum address", address)
	}

	return common.HexToAddress(address).Hex(), nil
}
