// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpc is a typed client for the JSON-RPC APIs of monerod (the
// daemon) and monero-wallet-rpc (the wallet).
//
// # Usage
//
//	client, err := rpc.Dial("http://127.0.0.1:18081")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	daemon := client.Daemon()
//	count, err := daemon.GetBlockCount(ctx)
//
//	wallet, err := rpc.DialWallet("http://127.0.0.1:18083",
//	    rpc.WithLogger(logger),
//	    rpc.WithMetrics(metrics),
//	)
//	heights := rpc.HeightsInclusive(100, 200)
//	transfers, err := wallet.GetTransfers(ctx, rpc.GetTransfersSelector{
//	    Categories:     map[rpc.TransferCategory]bool{rpc.CategoryIn: true},
//	    FilterByHeight: &heights,
//	})
//
// # Errors
//
// Every method returns one of three error types:
//
//   - *DecodeError: a value from the node could not be decoded (bad hex,
//     wrong length, unknown enum value, status other than "OK", a null or
//     incomplete result), or a param could not be encoded.
//   - *RPCError: the node answered with a JSON-RPC error object.
//   - *TransportError: the call failed below JSON-RPC (connection, HTTP
//     status, unparsable body, cancelled context).
//
// The only error the client absorbs is code -8 from get_transfer_by_txid,
// which WalletClient.GetTransfer reports as found == false.
//
// # Architecture
//
//   - client.go: Caller interface, Client and the typed request helpers
//   - params.go: lazily built positional and named params
//   - codec.go: hex, priority, envelope and subaddress index wire codecs
//   - heights.go: height range to min_height/max_height translation
//   - json.go: HTTP Caller
//   - daemon.go, wallet.go: the method catalogue
//
// A Client holds no mutable state and may be shared by goroutines. Nothing
// is retried and no timeout is imposed; pass a context with a deadline.
package rpc
