package account

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

// DefaultDerivationPath is the first account of the standard Ethereum
// BIP-44 tree.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

func AddressFromPrivateKey(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func PrivateKeyFromKeystore(file string, password string) (string, *ecdsa.PrivateKey, error) {
	json, err := os.ReadFile(file)
	if err != nil {
		return "", nil, err
	}
	key, err := keystore.DecryptKey(json, password)
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(key.PrivateKey), key.PrivateKey, nil
}

// works with both 0x prefix form and naked form
func PrivateKeyFromHex(hex string) (string, *ecdsa.PrivateKey, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "0x")
	privkey, err := crypto.HexToECDSA(hex)
	if err != nil {
		return "", nil, fmt.Errorf("invalid private key: %w", err)
	}
	return AddressFromPrivateKey(privkey), privkey, nil
}

// PrivateKeyFromMnemonic derives the key at path out of a BIP-39 mnemonic
// with an empty passphrase. An empty path means DefaultDerivationPath.
func PrivateKeyFromMnemonic(mnemonic string, path string) (string, *ecdsa.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", nil, fmt.Errorf("invalid mnemonic")
	}
	if path == "" {
		path = DefaultDerivationPath
	}
	derivationPath, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return "", nil, fmt.Errorf("invalid derivation path %s: %w", path, err)
	}

	seed := bip39.NewSeed(mnemonic, "")
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return "", nil, fmt.Errorf("couldn't derive master key: %w", err)
	}
	for _, index := range derivationPath {
		key, err = key.Child(index)
		if err != nil {
			return "", nil, fmt.Errorf("couldn't derive %s: %w", path, err)
		}
	}
	btcKey, err := key.ECPrivKey()
	if err != nil {
		return "", nil, err
	}
	privkey, err := crypto.ToECDSA(btcKey.Serialize())
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(privkey), privkey, nil
}
