package transaction

import (
	"errors"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
)

// ErrNilSigner signals that a nil single signer has been provided
var ErrNilSigner = errors.New("nil single signer")

// ErrNilPrivateKey signals that a nil private key has been provided
var ErrNilPrivateKey = errors.New("nil private key")

// ErrNilKeyGenerator signals that a nil key generator has been provided
var ErrNilKeyGenerator = errors.New("nil key generator")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

func (tx *Transaction) unsignedBytes(marshalizer marshal.Marshalizer) ([]byte, error) {
	unsignedTx := *tx
	unsignedTx.Signature = nil

	return marshalizer.Marshal(&unsignedTx)
}

// Sign sets the author identity from the private key and signs the
// transaction's unsigned form. The resulting transaction is what the outer
// layers hash, order and deliver to the executor.
func (tx *Transaction) Sign(
	signer crypto.SingleSigner,
	privateKey crypto.PrivateKey,
	marshalizer marshal.Marshalizer,
) error {
	if check.IfNil(signer) {
		return ErrNilSigner
	}
	if check.IfNil(privateKey) {
		return ErrNilPrivateKey
	}
	if check.IfNil(marshalizer) {
		return ErrNilMarshalizer
	}

	publicKeyBytes, err := privateKey.GeneratePublic().ToByteArray()
	if err != nil {
		return err
	}

	tx.SndAddr = publicKeyBytes
	buff, err := tx.unsignedBytes(marshalizer)
	if err != nil {
		return err
	}

	signature, err := signer.Sign(privateKey, buff)
	if err != nil {
		return err
	}

	tx.Signature = signature

	return nil
}

// Verify checks the transaction's signature against its author identity
func (tx *Transaction) Verify(
	signer crypto.SingleSigner,
	keyGen crypto.KeyGenerator,
	marshalizer marshal.Marshalizer,
) error {
	if check.IfNil(signer) {
		return ErrNilSigner
	}
	if check.IfNil(keyGen) {
		return ErrNilKeyGenerator
	}
	if check.IfNil(marshalizer) {
		return ErrNilMarshalizer
	}

	publicKey, err := keyGen.PublicKeyFromByteArray(tx.SndAddr)
	if err != nil {
		return err
	}

	buff, err := tx.unsignedBytes(marshalizer)
	if err != nil {
		return err
	}

	return signer.Verify(publicKey, buff, tx.Signature)
}
