package tfhe

import "github.com/go-tfhe/tfhe/sampling"

// Evaluator holds the public material (bootstrapping key, key-switching
// key, NAND test vector) needed to homomorphically evaluate gates over
// level-0 ciphertexts, without access to the secret key.
type Evaluator struct {
	params Parameters
	bk     BootstrappingKey
	ksk    KeySwitchingKey
	tv     TRLWE
}

// NewEvaluator derives an Evaluator's public material from a freshly
// sampled secret key pair; the secret key itself is discarded by the
// caller once this returns.
func NewEvaluator(params Parameters, sk SecretKey, src sampling.Source) Evaluator {
	return Evaluator{
		params: params,
		bk:     NewBootstrappingKey(params, sk, src),
		ksk:    NewKeySwitchingKey(params, sk, src),
		tv:     TestVector(params, sk, src),
	}
}

// NAND homomorphically evaluates NOT(c0 AND c1): it forms the trivial
// linear combination ClearlyTrue - c0 - c1, whose plaintext phase lands on
// the correct side of the torus circle for NAND, then restores a fresh,
// bounded noise budget via gate bootstrapping and returns to level 0 via
// identity key switching.
func (e Evaluator) NAND(c0, c1 CiphertextLv0) CiphertextLv0 {
	sum := ClearlyTrue(e.params).Sub(c0).Sub(c1)
	bootstrapped := GateBootstrap(e.params, e.bk, e.tv, sum)
	return IdentityKeySwitch(e.params, e.ksk, bootstrapped)
}
