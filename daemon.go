// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
)

// DaemonClient calls monerod.
type DaemonClient struct {
	caller Caller
}

// NewDaemonClient wraps any Caller.
func NewDaemonClient(caller Caller) *DaemonClient {
	return &DaemonClient{caller: caller}
}

// GetBlockCount looks up how many blocks are in the longest chain known to
// the node.
func (d *DaemonClient) GetBlockCount(ctx context.Context) (uint64, error) {
	rsp, err := requestOK[struct {
		Count uint64 `json:"count"`
	}](ctx, d.caller, "get_block_count", NoParams())
	if err != nil {
		return 0, err
	}
	if rsp.Count == 0 {
		return 0, decodeErr(ErrOutOfRange, "block count 0")
	}
	return rsp.Count, nil
}

// OnGetBlockHash looks up a block's hash by its height.
func (d *DaemonClient) OnGetBlockHash(ctx context.Context, height uint64) (Hash, error) {
	return request[Hash](ctx, d.caller, "on_get_block_hash", Positional(Values(height)))
}

// GetBlockTemplate gets a block template on which to mine a new block.
func (d *DaemonClient) GetBlockTemplate(ctx context.Context, walletAddress Address, reserveSize uint64) (BlockTemplate, error) {
	params := Chain(
		Pair("wallet_address", walletAddress),
		Pair("reserve_size", reserveSize),
	)
	return requestOK[BlockTemplate](ctx, d.caller, "get_block_template", Named(params))
}

// SubmitBlock submits a mined block to the network.
func (d *DaemonClient) SubmitBlock(ctx context.Context, blob []byte) error {
	_, err := requestOK[struct{}](ctx, d.caller, "submit_block", Positional(Values(HexBytes(blob))))
	return err
}

type headerSelectorKind uint8

const (
	selectLast headerSelectorKind = iota
	selectHash
	selectHeight
)

// BlockHeaderSelector picks the block GetBlockHeader reports on.
type BlockHeaderSelector struct {
	kind   headerSelectorKind
	hash   Hash
	height uint64
}

// LastBlock selects the chain tip.
func LastBlock() BlockHeaderSelector {
	return BlockHeaderSelector{kind: selectLast}
}

// BlockByHash selects the block with hash h.
func BlockByHash(h Hash) BlockHeaderSelector {
	return BlockHeaderSelector{kind: selectHash, hash: h}
}

// BlockByHeight selects the block at height.
func BlockByHeight(height uint64) BlockHeaderSelector {
	return BlockHeaderSelector{kind: selectHeight, height: height}
}

func (s BlockHeaderSelector) method() (string, Params) {
	switch s.kind {
	case selectHash:
		return "get_block_header_by_hash", Named(Pair("hash", s.hash))
	case selectHeight:
		return "get_block_header_by_height", Named(Pair("height", s.height))
	default:
		return "get_last_block_header", NoParams()
	}
}

// GetBlockHeader retrieves the header of the selected block.
func (d *DaemonClient) GetBlockHeader(ctx context.Context, selector BlockHeaderSelector) (BlockHeader, error) {
	method, params := selector.method()
	rsp, err := requestOK[struct {
		BlockHeader *BlockHeader `json:"block_header"`
	}](ctx, d.caller, method, params)
	if err != nil {
		return BlockHeader{}, err
	}
	return required(method, "block_header", rsp.BlockHeader)
}

// GetBlockHeadersRange returns the headers from start to end, both included,
// and whether the node flagged the answer as untrusted.
func (d *DaemonClient) GetBlockHeadersRange(ctx context.Context, start, end uint64) ([]BlockHeader, bool, error) {
	params := Chain(
		Pair("start_height", start),
		Pair("end_height", end),
	)
	env, err := request[Envelope[struct {
		Headers []BlockHeader `json:"headers"`
	}]](ctx, d.caller, "get_block_headers_range", Named(params))
	if err != nil {
		return nil, false, err
	}
	rsp, err := env.Unwrap()
	if err != nil {
		return nil, false, err
	}
	return rsp.Headers, env.Untrusted, nil
}

// Regtest enables the methods only available on a regtest daemon.
func (d *DaemonClient) Regtest() *RegtestDaemonClient {
	return &RegtestDaemonClient{DaemonClient: d}
}

// RegtestDaemonClient is a DaemonClient for a node started with --regtest.
type RegtestDaemonClient struct {
	*DaemonClient
}

// GenerateBlocks mines blocks paying rewards to walletAddress and returns
// the new chain height with the hashes of the generated blocks.
func (r *RegtestDaemonClient) GenerateBlocks(ctx context.Context, amountOfBlocks uint64, walletAddress Address) (uint64, []Hash, error) {
	params := Chain(
		Pair("amount_of_blocks", amountOfBlocks),
		Pair("wallet_address", walletAddress),
	)
	rsp, err := requestOK[struct {
		Height uint64 `json:"height"`
		Blocks []Hash `json:"blocks"`
	}](ctx, r.caller, "generateblocks", Named(params))
	if err != nil {
		return 0, nil, err
	}
	return rsp.Height, rsp.Blocks, nil
}
