package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring/loopringtest"
	"github.com/MMN3003/loopmint/src/mint/domain"
)

const (
	exchangeAddr = "0x2e76EBd1c7c0C8e7c2B875b6d505a260C525d25e"
	ownerAddr    = "0x1111111111111111111111111111111111111111"
)

type fixture struct {
	srv  *loopringtest.Server
	port *LoopringPort
	key  *eddsa.KeyPair
	cred *domain.APICredential
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	key, err := eddsa.KeyPairFromSeed([]byte("adapter test key"))
	require.NoError(t, err)

	srv := loopringtest.NewServer(exchangeAddr, 5)
	t.Cleanup(srv.Close)
	srv.AddAccount(loopringtest.Account{
		AccountID:     7,
		Owner:         ownerAddr,
		Nonce:         3,
		PublicX:       key.PublicXHex(),
		PublicY:       key.PublicYHex(),
		APIKey:        "k",
		NextStorageID: 42,
	})

	client, err := loopring.NewClient(srv.URL, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	return &fixture{
		srv:  srv,
		port: NewLoopringPort(client),
		key:  key,
		cred: &domain.APICredential{AccountID: 7, APIKey: "k"},
	}
}

func request(storageID domain.SequenceID) *domain.MintRequest {
	return &domain.MintRequest{
		Exchange:          exchangeAddr,
		MinterID:          7,
		MinterAddress:     ownerAddr,
		ToAccountID:       7,
		ToAddress:         ownerAddr,
		NFTType:           domain.NFTTypeERC1155,
		TokenAddress:      "0x3333333333333333333333333333333333333333",
		NFTID:             "0x" + strings.Repeat("0", 63) + "9",
		Amount:            domain.MintAmount,
		ValidUntil:        4102444800,
		StorageID:         storageID,
		MaxFee:            domain.Fee{TokenID: 0, Amount: "1000"},
		RoyaltyPercentage: domain.RoyaltyPercentage,
		ForceToMint:       true,
	}
}

func TestGetExchangeInfo(t *testing.T) {
	f := newFixture(t)

	info, err := f.port.GetExchangeInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.ExchangeInfo{ExchangeAddress: exchangeAddr, ChainID: 5}, info)
}

func TestGetAccount(t *testing.T) {
	f := newFixture(t)

	acc, err := f.port.GetAccount(context.Background(), ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), acc.AccountID)
	assert.Equal(t, uint32(3), acc.Nonce)
	assert.Equal(t, f.key.PublicXHex(), acc.PublicKeyX)
}

func TestGetAccount_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.port.GetAccount(context.Background(), "0x9999999999999999999999999999999999999999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestIssueAPIKey(t *testing.T) {
	f := newFixture(t)

	cred, err := f.port.IssueAPIKey(context.Background(), 7, f.key.SecretHex())
	require.NoError(t, err)
	assert.Equal(t, &domain.APICredential{AccountID: 7, APIKey: "k"}, cred)
}

func TestIssueAPIKey_Rejected(t *testing.T) {
	f := newFixture(t)
	other, err := eddsa.KeyPairFromSeed([]byte("stale key"))
	require.NoError(t, err)

	_, err = f.port.IssueAPIKey(context.Background(), 7, other.SecretHex())
	assert.ErrorIs(t, err, domain.ErrAuthRejected)
}

func TestIssueAPIKey_BadSecret(t *testing.T) {
	f := newFixture(t)

	_, err := f.port.IssueAPIKey(context.Background(), 7, "0xnothex")
	assert.ErrorIs(t, err, domain.ErrKeyDerivation)
}

func TestNextStorageID(t *testing.T) {
	f := newFixture(t)

	id, err := f.port.NextStorageID(context.Background(), f.cred, domain.SellTokenIDNone)
	require.NoError(t, err)
	assert.Equal(t, domain.SequenceID(42), id)

	_, err = f.port.NextStorageID(context.Background(), &domain.APICredential{AccountID: 7, APIKey: "bad"}, 0)
	assert.ErrorIs(t, err, domain.ErrSequenceAllocationFailed)
}

func TestMintFees(t *testing.T) {
	f := newFixture(t)
	f.srv.SetFees(map[string]string{"ETH": "1000", "LRC": "not-a-number"})

	fees, err := f.port.MintFees(context.Background(), f.cred, "", domain.FeeRequestTypeMint)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(fees["ETH"]))
}

func TestMintFees_Refused(t *testing.T) {
	f := newFixture(t)
	f.srv.FailFees(http.StatusInternalServerError, loopring.CodeInvalidAPIKey, "invalid apiKey")

	_, err := f.port.MintFees(context.Background(), f.cred, "", domain.FeeRequestTypeMint)
	assert.ErrorIs(t, err, domain.ErrFeeRequestRejected)
	assert.NotErrorIs(t, err, domain.ErrFeeUnavailable)
	assert.Contains(t, err.Error(), "104002")
}

func TestSubmitNFTMint(t *testing.T) {
	f := newFixture(t)
	req := request(42)

	sig, err := f.port.SignNFTMint(req, f.key.SecretHex())
	require.NoError(t, err)

	res, err := f.port.SubmitNFTMint(context.Background(), f.cred, req, sig)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, res.StatusCode)
	assert.NotEmpty(t, res.Hash)
	assert.NotEmpty(t, res.NFTData)
}

func TestSubmitNFTMint_RejectionIsResult(t *testing.T) {
	f := newFixture(t)
	f.srv.RejectMints(102001, "insufficient balance")
	req := request(42)

	sig, err := f.port.SignNFTMint(req, f.key.SecretHex())
	require.NoError(t, err)

	res, err := f.port.SubmitNFTMint(context.Background(), f.cred, req, sig)
	require.NoError(t, err)
	assert.Equal(t, 102001, res.StatusCode)
	assert.Equal(t, "insufficient balance", res.Message)
}

func TestSubmitNFTMint_StatusWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	client, err := loopring.NewClient(srv.URL, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	res, err := NewLoopringPort(client).SubmitNFTMint(context.Background(), &domain.APICredential{}, request(1), "0x")
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	client, err := loopring.NewClient(base, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	port := NewLoopringPort(client)
	ctx := context.Background()
	cred := &domain.APICredential{AccountID: 7, APIKey: "k"}

	_, err = port.GetExchangeInfo(ctx)
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = port.NextStorageID(ctx, cred, 0)
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = port.MintFees(ctx, cred, "", domain.FeeRequestTypeMint)
	assert.ErrorIs(t, err, domain.ErrTransport)

	_, err = port.SubmitNFTMint(ctx, cred, request(1), "0x")
	assert.ErrorIs(t, err, domain.ErrTransport)
}
