// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "time"

// Amounts are in atomic units (piconero) throughout.

// BlockTemplate is a block to mine on, from get_block_template.
type BlockTemplate struct {
	BlockHashingBlob  HexBytes `json:"blockhashing_blob"`
	BlockTemplateBlob HexBytes `json:"blocktemplate_blob"`
	Difficulty        uint64   `json:"difficulty"`
	ExpectedReward    uint64   `json:"expected_reward"`
	Height            uint64   `json:"height"`
	PrevHash          Hash     `json:"prev_hash"`
	ReservedOffset    uint64   `json:"reserved_offset"`
}

// BlockHeader is the header of one block as reported by the daemon.
type BlockHeader struct {
	BlockSize    uint64 `json:"block_size"`
	Depth        uint64 `json:"depth"`
	Difficulty   uint64 `json:"difficulty"`
	Hash         Hash   `json:"hash"`
	Height       uint64 `json:"height"`
	MajorVersion uint8  `json:"major_version"`
	MinorVersion uint8  `json:"minor_version"`
	Nonce        uint32 `json:"nonce"`
	NumTxes      uint64 `json:"num_txes"`
	OrphanStatus bool   `json:"orphan_status"`
	PrevHash     Hash   `json:"prev_hash"`
	Reward       uint64 `json:"reward"`
	Timestamp    int64  `json:"timestamp"`
}

// Time is the block timestamp.
func (h BlockHeader) Time() time.Time {
	return time.Unix(h.Timestamp, 0).UTC()
}

// BalanceData is an account balance with its per-subaddress breakdown.
type BalanceData struct {
	Balance              uint64              `json:"balance"`
	UnlockedBalance      uint64              `json:"unlocked_balance"`
	MultisigImportNeeded bool                `json:"multisig_import_needed"`
	PerSubaddress        []SubaddressBalance `json:"per_subaddress"`
	BlocksToUnlock       uint64              `json:"blocks_to_unlock"`
}

// SubaddressBalance carries its index in the flat account_index/address_index
// shape.
type SubaddressBalance struct {
	AccountIndex      uint32  `json:"account_index"`
	AddressIndex      uint32  `json:"address_index"`
	Address           Address `json:"address"`
	Balance           uint64  `json:"balance"`
	UnlockedBalance   uint64  `json:"unlocked_balance"`
	Label             string  `json:"label"`
	NumUnspentOutputs uint64  `json:"num_unspent_outputs"`
	BlocksToUnlock    uint64  `json:"blocks_to_unlock"`
}

// Index returns the flat account/address pair as a SubaddressIndex.
func (b SubaddressBalance) Index() SubaddressIndex {
	return SubaddressIndex{Major: b.AccountIndex, Minor: b.AddressIndex}
}

// AddressData holds an account's primary address and subaddresses.
type AddressData struct {
	Address   Address          `json:"address"`
	Addresses []SubaddressInfo `json:"addresses"`
}

// SubaddressInfo describes one subaddress of an account.
type SubaddressInfo struct {
	Address      Address `json:"address"`
	Label        string  `json:"label"`
	AddressIndex uint32  `json:"address_index"`
	Used         bool    `json:"used"`
}

// GetAccountsData lists the wallet accounts with their totals.
type GetAccountsData struct {
	SubaddressAccounts   []AccountInfo `json:"subaddress_accounts"`
	TotalBalance         uint64        `json:"total_balance"`
	TotalUnlockedBalance uint64        `json:"total_unlocked_balance"`
}

// AccountInfo describes one account.
type AccountInfo struct {
	AccountIndex    uint32  `json:"account_index"`
	Balance         uint64  `json:"balance"`
	BaseAddress     Address `json:"base_address"`
	Label           string  `json:"label"`
	Tag             string  `json:"tag"`
	UnlockedBalance uint64  `json:"unlocked_balance"`
}

// Payment is an incoming payment matched by payment id.
type Payment struct {
	PaymentID    HexBytes        `json:"payment_id"`
	TxHash       Hash            `json:"tx_hash"`
	Amount       uint64          `json:"amount"`
	BlockHeight  uint64          `json:"block_height"`
	UnlockTime   uint64          `json:"unlock_time"`
	SubaddrIndex SubaddressIndex `json:"subaddr_index"`
	Address      Address         `json:"address"`
}

// Destination is one output of a transfer.
type Destination struct {
	Address Address `json:"address"`
	Amount  uint64  `json:"amount"`
}

// TransferOptions holds the optional transfer params. Nil fields are left
// out of the request.
type TransferOptions struct {
	AccountIndex   *uint32
	SubaddrIndices []uint32
	Mixin          *uint64
	RingSize       *uint64
	UnlockTime     *uint64
	PaymentID      *PaymentID
	DoNotRelay     *bool
}

// TransferData describes a transaction created by Transfer.
type TransferData struct {
	Amount        uint64   `json:"amount"`
	Fee           uint64   `json:"fee"`
	MultisigTxset HexBytes `json:"multisig_txset"`
	TxBlob        HexBytes `json:"tx_blob"`
	TxHash        Hash     `json:"tx_hash"`
	TxKey         HexBytes `json:"tx_key"`
	TxMetadata    HexBytes `json:"tx_metadata"`
	UnsignedTxset HexBytes `json:"unsigned_txset"`
}

// SignedTransfer is the result of SignTransfer.
type SignedTransfer struct {
	SignedTxset HexBytes   `json:"signed_txset"`
	TxHashList  []Hash     `json:"tx_hash_list"`
	TxRawList   []HexBytes `json:"tx_raw_list"`
}

// TransferCategory is both a get_transfers filter and the type of a
// returned transfer.
type TransferCategory string

const (
	CategoryIn      TransferCategory = "in"
	CategoryOut     TransferCategory = "out"
	CategoryPending TransferCategory = "pending"
	CategoryFailed  TransferCategory = "failed"
	CategoryPool    TransferCategory = "pool"
)

// TransferCategories lists the categories in the order they are sent.
var TransferCategories = []TransferCategory{
	CategoryIn,
	CategoryOut,
	CategoryPending,
	CategoryFailed,
	CategoryPool,
}

// GetTransfersSelector filters get_transfers. Categories missing from the
// map are not sent; FilterByHeight nil means no height filter.
type GetTransfersSelector struct {
	Categories     map[TransferCategory]bool
	FilterByHeight *HeightRange
	AccountIndex   *uint32
	SubaddrIndices []uint32
}

// Transfer is one entry of the wallet's transfer history.
type Transfer struct {
	Address                         Address          `json:"address"`
	Amount                          uint64           `json:"amount"`
	Confirmations                   uint64           `json:"confirmations"`
	DoubleSpendSeen                 bool             `json:"double_spend_seen"`
	Fee                             uint64           `json:"fee"`
	Height                          uint64           `json:"height"`
	Locked                          bool             `json:"locked"`
	Note                            string           `json:"note"`
	PaymentID                       HexBytes         `json:"payment_id"`
	SubaddrIndex                    SubaddressIndex  `json:"subaddr_index"`
	SuggestedConfirmationsThreshold uint64           `json:"suggested_confirmations_threshold"`
	Timestamp                       int64            `json:"timestamp"`
	TxID                            Hash             `json:"txid"`
	Type                            TransferCategory `json:"type"`
	UnlockTime                      uint64           `json:"unlock_time"`
	Destinations                    []Destination    `json:"destinations,omitempty"`
}

// Time is the transfer timestamp.
func (t Transfer) Time() time.Time {
	return time.Unix(t.Timestamp, 0).UTC()
}

// SignedKeyImage is a key image with its signature.
type SignedKeyImage struct {
	KeyImage  HexBytes `json:"key_image"`
	Signature HexBytes `json:"signature"`
}

// KeyImageImportResult reports what import_key_images found.
type KeyImageImportResult struct {
	Height  uint64 `json:"height"`
	Spent   uint64 `json:"spent"`
	Unspent uint64 `json:"unspent"`
}

// CheckTxKeyResult is the result of CheckTxKey. Received is 0 when the
// transaction pays nothing to the address.
type CheckTxKeyResult struct {
	Confirmations uint64 `json:"confirmations"`
	InPool        bool   `json:"in_pool"`
	Received      uint64 `json:"received"`
}

// RefreshResult is the result of Refresh.
type RefreshResult struct {
	BlocksFetched uint64 `json:"blocks_fetched"`
	ReceivedMoney bool   `json:"received_money"`
}
