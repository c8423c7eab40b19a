// txcoredemo exercises the Plasma MoreVP transaction core end to end:
// UTXOs → builder → sign → encode → decode → recover. It performs no
// I/O against a real child chain; ChildChainRPC is only logged, never
// dialed, since block submission is out of scope for this module.
//
// Architecture:
//
//	main goroutine — prints config, fans work out to the worker pool
//	N goroutines   — each builds, signs, encodes, decodes and
//	                 verifies one sample transaction concurrently,
//	                 demonstrating that internal/chain needs no
//	                 coordination across callers
package main

import (
	"crypto/ecdsa"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/gipsh/plasma-txcore/internal/chain"
	"github.com/gipsh/plasma-txcore/internal/config"
)

func main() {
	config.Load()
	log.Printf("[txcoredemo] starting | rpc=%s workers=%d default_fee=%d",
		config.ChildChainRPC, config.Workers, config.DefaultFee)

	aliceKey, err := crypto.GenerateKey()
	if err != nil {
		log.Fatalf("[txcoredemo] generate alice key: %v", err)
	}
	bobKey, err := crypto.GenerateKey()
	if err != nil {
		log.Fatalf("[txcoredemo] generate bob key: %v", err)
	}
	alice := chain.AddressFromKey(aliceKey)
	bob := chain.AddressFromKey(bobKey)

	var wg sync.WaitGroup
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			runSample(n, aliceKey, bob, alice)
		}(i)
	}
	wg.Wait()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	log.Println("[txcoredemo] demo transactions built, idling until signal")
	<-quit
	log.Println("[txcoredemo] shutting down")
}

// runSample builds one sample spend from a single deposit UTXO owned
// by alice, paying bob and returning change to alice, then signs,
// encodes, decodes and recovers it, logging each stage with a
// correlation ID so concurrent runs are distinguishable in the log.
func runSample(n int, alicePriv *ecdsa.PrivateKey, bob, alice chain.Address) {
	corrID := uuid.New().String()[:8]

	raw, err := chain.CreateFromUTXOs(chain.BuilderInput{
		ChangeAddress: alice,
		UTXOs: []chain.UTXO{
			{Blknum: uint64(1000 + n), Txindex: 0, Oindex: 0, Amount: 10, Currency: chain.ZeroAddress()},
		},
		Receiver: chain.Receiver{Address: bob, Amount: 7},
		Fee:      config.DefaultFee,
	})
	if err != nil {
		log.Printf("[txcoredemo][%s] build failed: %v", corrID, err)
		return
	}
	log.Printf("[txcoredemo][%s] built raw tx | amount1=%d amount2=%d fee=%d",
		corrID, raw.Amount1, raw.Amount2, raw.Fee)

	signed, err := chain.SignTransaction(raw, chain.NewSignerKey(alicePriv), chain.NoSigner())
	if err != nil {
		log.Printf("[txcoredemo][%s] sign failed: %v", corrID, err)
		return
	}

	encoded, err := signed.Encode()
	if err != nil {
		log.Printf("[txcoredemo][%s] encode failed: %v", corrID, err)
		return
	}
	log.Printf("[txcoredemo][%s] encoded signed tx | %d bytes", corrID, len(encoded))

	decoded, err := chain.DecodeSignedTransaction(encoded)
	if err != nil {
		log.Printf("[txcoredemo][%s] decode failed: %v", corrID, err)
		return
	}

	spender1, spender2, err := decoded.RecoverSpenders()
	if err != nil {
		log.Printf("[txcoredemo][%s] recover failed: %v", corrID, err)
		return
	}
	log.Printf("[txcoredemo][%s] recovered spender1=%v spender2=%v", corrID, spender1, spender2)
}
