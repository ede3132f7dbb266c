// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"iter"
	"math"
)

// WalletClient calls monero-wallet-rpc.
type WalletClient struct {
	caller Caller
}

// NewWalletClient wraps any Caller.
func NewWalletClient(caller Caller) *WalletClient {
	return &WalletClient{caller: caller}
}

// GetBalance returns the balance of an account, optionally broken down for
// the given address indices.
func (w *WalletClient) GetBalance(ctx context.Context, account uint32, addressIndices []uint32) (BalanceData, error) {
	params := Chain(
		Pair("account_index", account),
		OptSlice("address_indices", addressIndices),
	)
	return request[BalanceData](ctx, w.caller, "get_balance", Named(params))
}

// GetAddress returns the addresses of an account, optionally only the
// given subaddresses.
func (w *WalletClient) GetAddress(ctx context.Context, account uint32, addressIndices []uint32) (AddressData, error) {
	params := Chain(
		Pair("account_index", account),
		OptSlice("address_index", addressIndices),
	)
	return request[AddressData](ctx, w.caller, "get_address", Named(params))
}

// GetAddressIndex gets the account and address index of a (sub)address.
func (w *WalletClient) GetAddressIndex(ctx context.Context, address Address) (SubaddressIndex, error) {
	rsp, err := request[struct {
		Index *SubaddressIndex `json:"index"`
	}](ctx, w.caller, "get_address_index", Named(Pair("address", address)))
	if err != nil {
		return SubaddressIndex{}, err
	}
	return required("get_address_index", "index", rsp.Index)
}

// CreateAddress creates a new address in an account and returns it with its
// index within the account.
func (w *WalletClient) CreateAddress(ctx context.Context, account uint32, label *string) (Address, uint32, error) {
	params := Chain(
		Pair("account_index", account),
		Opt("label", label),
	)
	rsp, err := request[struct {
		Address      Address `json:"address"`
		AddressIndex uint32  `json:"address_index"`
	}](ctx, w.caller, "create_address", Named(params))
	return rsp.Address, rsp.AddressIndex, err
}

// LabelAddress sets the label of a subaddress.
func (w *WalletClient) LabelAddress(ctx context.Context, index SubaddressIndex, label string) error {
	params := Chain(
		Pair("index", index),
		Pair("label", label),
	)
	_, err := request[struct{}](ctx, w.caller, "label_address", Named(params))
	return err
}

// GetAccounts lists the wallet's accounts, optionally only those with tag.
func (w *WalletClient) GetAccounts(ctx context.Context, tag *string) (GetAccountsData, error) {
	return request[GetAccountsData](ctx, w.caller, "get_accounts", Named(Opt("tag", tag)))
}

type paymentsResult struct {
	Payments []Payment `json:"payments"`
}

// GetPayments lists incoming payments with the given payment id.
func (w *WalletClient) GetPayments(ctx context.Context, paymentID PaymentID) ([]Payment, error) {
	rsp, err := request[paymentsResult](ctx, w.caller, "get_payments", Named(Pair("payment_id", paymentID)))
	return rsp.Payments, err
}

// GetBulkPayments lists incoming payments for any of the payment ids above
// minBlockHeight.
func (w *WalletClient) GetBulkPayments(ctx context.Context, paymentIDs []PaymentID, minBlockHeight uint64) ([]Payment, error) {
	if paymentIDs == nil {
		paymentIDs = []PaymentID{}
	}
	params := Chain(
		Pair("payment_ids", paymentIDs),
		Pair("min_block_height", minBlockHeight),
	)
	rsp, err := request[paymentsResult](ctx, w.caller, "get_bulk_payments", Named(params))
	return rsp.Payments, err
}

func (w *WalletClient) queryKey(ctx context.Context, keyType string) (string, error) {
	rsp, err := request[struct {
		Key *string `json:"key"`
	}](ctx, w.caller, "query_key", Named(Pair("key_type", keyType)))
	if err != nil {
		return "", err
	}
	return required("query_key", "key", rsp.Key)
}

func (w *WalletClient) queryPrivateKey(ctx context.Context, keyType string) (PrivateKey, error) {
	var k PrivateKey
	s, err := w.queryKey(ctx, keyType)
	if err != nil {
		return k, err
	}
	err = k.UnmarshalText([]byte(s))
	return k, err
}

// QueryViewKey returns the private view key.
func (w *WalletClient) QueryViewKey(ctx context.Context) (PrivateKey, error) {
	return w.queryPrivateKey(ctx, "view_key")
}

// QuerySpendKey returns the private spend key.
func (w *WalletClient) QuerySpendKey(ctx context.Context) (PrivateKey, error) {
	return w.queryPrivateKey(ctx, "spend_key")
}

// QueryMnemonic returns the wallet seed words.
func (w *WalletClient) QueryMnemonic(ctx context.Context) (string, error) {
	return w.queryKey(ctx, "mnemonic")
}

// GetHeight returns the wallet's current block height.
func (w *WalletClient) GetHeight(ctx context.Context) (uint64, error) {
	rsp, err := request[struct {
		Height uint64 `json:"height"`
	}](ctx, w.caller, "get_height", NoParams())
	if err != nil {
		return 0, err
	}
	if rsp.Height == 0 {
		return 0, decodeErr(ErrOutOfRange, "wallet height 0")
	}
	return rsp.Height, nil
}

// Transfer sends to the destinations in order. The tx key, hex and metadata
// are always requested.
func (w *WalletClient) Transfer(ctx context.Context, destinations []Destination, priority Priority, opts TransferOptions) (TransferData, error) {
	if destinations == nil {
		destinations = []Destination{}
	}
	params := Chain(
		Pair("destinations", destinations),
		Pair("priority", priority),
		Opt("account_index", opts.AccountIndex),
		OptSlice("subaddr_indices", opts.SubaddrIndices),
		Opt("mixin", opts.Mixin),
		Opt("ring_size", opts.RingSize),
		Opt("unlock_time", opts.UnlockTime),
		Opt("payment_id", opts.PaymentID),
		Opt("do_not_relay", opts.DoNotRelay),
		Pair("get_tx_key", true),
		Pair("get_tx_hex", true),
		Pair("get_tx_metadata", true),
	)
	return request[TransferData](ctx, w.caller, "transfer", Named(params))
}

// SignTransfer signs a transaction created on a read-only wallet.
func (w *WalletClient) SignTransfer(ctx context.Context, unsignedTxset []byte) (SignedTransfer, error) {
	params := Chain(
		Pair("unsigned_txset", HexBytes(unsignedTxset)),
		Pair("export_raw", true),
	)
	return request[SignedTransfer](ctx, w.caller, "sign_transfer", Named(params))
}

// SubmitTransfer relays a transaction signed by SignTransfer.
func (w *WalletClient) SubmitTransfer(ctx context.Context, txData []byte) ([]Hash, error) {
	rsp, err := request[struct {
		TxHashList *[]Hash `json:"tx_hash_list"`
	}](ctx, w.caller, "submit_transfer", Named(Pair("tx_data_hex", HexBytes(txData))))
	if err != nil {
		return nil, err
	}
	return required("submit_transfer", "tx_hash_list", rsp.TxHashList)
}

func categoryParams(categories map[TransferCategory]bool) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		for _, c := range TransferCategories {
			v, ok := categories[c]
			if !ok {
				continue
			}
			if !yield(string(c), v) {
				return
			}
		}
	}
}

// GetTransfers returns transfers grouped by category.
func (w *WalletClient) GetTransfers(ctx context.Context, selector GetTransfersSelector) (map[TransferCategory][]Transfer, error) {
	params := Chain(
		categoryParams(selector.Categories),
		heightFilter(selector.FilterByHeight),
		Opt("account_index", selector.AccountIndex),
		OptSlice("subaddr_indices", selector.SubaddrIndices),
	)
	rsp, err := request[map[TransferCategory][]Transfer](ctx, w.caller, "get_transfers", Named(params))
	if err != nil {
		return nil, err
	}
	if rsp == nil {
		rsp = map[TransferCategory][]Transfer{}
	}
	return rsp, nil
}

// GetTransfer looks up one transfer by id. found is false when the wallet
// does not know the transfer.
func (w *WalletClient) GetTransfer(ctx context.Context, txid Hash, account *uint32) (t Transfer, found bool, err error) {
	params := Chain(
		Pair("txid", txid),
		Opt("account_index", account),
	)
	rsp, err := request[struct {
		Transfer *Transfer `json:"transfer"`
	}](ctx, w.caller, "get_transfer_by_txid", Named(params))
	if err != nil {
		if rerr, ok := IsRPCError(err); ok && rerr.Code == CodeWrongTxID {
			return Transfer{}, false, nil
		}
		return Transfer{}, false, err
	}
	t, err = required("get_transfer_by_txid", "transfer", rsp.Transfer)
	if err != nil {
		return Transfer{}, false, err
	}
	return t, true, nil
}

// ExportKeyImages exports a signed set of key images.
func (w *WalletClient) ExportKeyImages(ctx context.Context) ([]SignedKeyImage, error) {
	rsp, err := request[struct {
		SignedKeyImages []SignedKeyImage `json:"signed_key_images"`
	}](ctx, w.caller, "export_key_images", NoParams())
	return rsp.SignedKeyImages, err
}

// ImportKeyImages imports signed key images and checks their spent status.
func (w *WalletClient) ImportKeyImages(ctx context.Context, images []SignedKeyImage) (KeyImageImportResult, error) {
	if images == nil {
		images = []SignedKeyImage{}
	}
	return request[KeyImageImportResult](ctx, w.caller, "import_key_images", Named(Pair("signed_key_images", images)))
}

// CheckTxKey checks that txKey proves a payment in txid to address.
func (w *WalletClient) CheckTxKey(ctx context.Context, txid, txKey Hash, address Address) (CheckTxKeyResult, error) {
	params := Chain(
		Pair("txid", txid),
		Pair("tx_key", txKey),
		Pair("address", address),
	)
	return request[CheckTxKeyResult](ctx, w.caller, "check_tx_key", Named(params))
}

// GetVersion returns the wallet RPC version. The node packs it as
// major<<16 | minor.
func (w *WalletClient) GetVersion(ctx context.Context) (major, minor uint16, err error) {
	rsp, err := request[struct {
		Version *uint64 `json:"version"`
	}](ctx, w.caller, "get_version", NoParams())
	if err != nil {
		return 0, 0, err
	}
	v, err := required("get_version", "version", rsp.Version)
	if err != nil {
		return 0, 0, err
	}
	return SplitVersion(v)
}

// SplitVersion unpacks a major<<16 | minor version number.
func SplitVersion(v uint64) (major, minor uint16, err error) {
	if v > math.MaxUint32 {
		return 0, 0, decodeErr(ErrOverflow, "version %d does not fit 32 bits", v)
	}
	return uint16(v >> 16), uint16(v & 0xffff), nil
}

// Refresh rescans the chain from startHeight, or from the wallet's own
// height when nil.
func (w *WalletClient) Refresh(ctx context.Context, startHeight *uint64) (RefreshResult, error) {
	return request[RefreshResult](ctx, w.caller, "refresh", Named(Opt("start_height", startHeight)))
}
