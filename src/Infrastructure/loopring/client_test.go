package loopring_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring/loopringtest"
)

const (
	exchangeAddr = "0x2e76EBd1c7c0C8e7c2B875b6d505a260C525d25e"
	ownerAddr    = "0x1111111111111111111111111111111111111111"
	apiKey       = "test-api-key"

	// 2100-01-01
	farFuture int64 = 4102444800
)

type fixture struct {
	srv    *loopringtest.Server
	client *loopring.Client
	key    *eddsa.KeyPair
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	key, err := eddsa.KeyPairFromSeed([]byte("client test key"))
	require.NoError(t, err)

	srv := loopringtest.NewServer(exchangeAddr, 5)
	t.Cleanup(srv.Close)
	srv.AddAccount(loopringtest.Account{
		AccountID:     7,
		Owner:         ownerAddr,
		Nonce:         3,
		PublicX:       key.PublicXHex(),
		PublicY:       key.PublicYHex(),
		APIKey:        apiKey,
		NextStorageID: 42,
	})

	client, err := loopring.NewClient(srv.URL, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return &fixture{srv: srv, client: client, key: key}
}

func mintRequest(storageID uint32) *loopring.NFTMintRequest {
	return &loopring.NFTMintRequest{
		Exchange:          exchangeAddr,
		MinterID:          7,
		MinterAddress:     ownerAddr,
		ToAccountID:       7,
		ToAddress:         ownerAddr,
		NFTType:           0,
		TokenAddress:      "0x3333333333333333333333333333333333333333",
		NFTID:             "0xab" + strings.Repeat("0", 61) + "1",
		Amount:            "100",
		ValidUntil:        farFuture,
		StorageID:         storageID,
		MaxFee:            loopring.MaxFee{TokenID: 0, Amount: "1000"},
		RoyaltyPercentage: 5,
		ForceToMint:       true,
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := loopring.NewClient("")
	assert.Error(t, err)
}

func TestGetExchangeInfo(t *testing.T) {
	f := newFixture(t)

	info, err := f.client.GetExchangeInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exchangeAddr, info.ExchangeAddress)
	assert.Equal(t, int64(5), info.ChainID)
}

func TestGetAccount(t *testing.T) {
	f := newFixture(t)

	acc, err := f.client.GetAccount(context.Background(), ownerAddr)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), acc.AccountID)
	assert.Equal(t, uint32(3), acc.Nonce)
	assert.Equal(t, f.key.PublicXHex(), acc.PublicKey.X)
}

func TestGetAccount_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.client.GetAccount(context.Background(), "0x9999999999999999999999999999999999999999")
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeAccountNotFound, apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
}

func TestGetUserAPIKey(t *testing.T) {
	f := newFixture(t)

	key, err := f.client.GetUserAPIKey(context.Background(), 7, f.key)
	require.NoError(t, err)
	assert.Equal(t, apiKey, key)
}

func TestGetUserAPIKey_WrongKey(t *testing.T) {
	f := newFixture(t)
	other, err := eddsa.KeyPairFromSeed([]byte("not the registered key"))
	require.NoError(t, err)

	_, err = f.client.GetUserAPIKey(context.Background(), 7, other)
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeInvalidAPISig, apiErr.Code)
}

func TestGetNextStorageID(t *testing.T) {
	f := newFixture(t)

	id, err := f.client.GetNextStorageID(context.Background(), apiKey, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id.OffchainID)

	_, err = f.client.GetNextStorageID(context.Background(), "wrong", 7, 0)
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeInvalidAPIKey, apiErr.Code)
}

func TestGetNFTOffchainFee(t *testing.T) {
	f := newFixture(t)
	f.srv.SetFees(map[string]string{"ETH": "1000", "LRC": "25"})

	fee, err := f.client.GetNFTOffchainFee(context.Background(), apiKey, 7, 9, "0x3333333333333333333333333333333333333333")
	require.NoError(t, err)
	require.Len(t, fee.Fees, 2)
	assert.Equal(t, loopring.TokenFee{Token: "ETH", Fee: "1000", Discount: float64(1)}, fee.Fees[0])
}

func TestSubmitNFTMint(t *testing.T) {
	f := newFixture(t)
	req := mintRequest(42)
	sig, err := loopring.SignNFTMint(f.key, req)
	require.NoError(t, err)

	res, err := f.client.SubmitNFTMint(context.Background(), apiKey, req, sig)
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Status)
	assert.Equal(t, uint32(42), res.StorageID)
	assert.NotEmpty(t, res.Hash)

	nftData, err := loopring.NFTData(req)
	require.NoError(t, err)
	assert.Equal(t, eddsa.Hex(nftData), res.NFTData)

	require.Len(t, f.srv.Mints(), 1)
	assert.Equal(t, sig, f.srv.Mints()[0].EddsaSignature)
	assert.Equal(t, uint32(44), f.srv.NextStorageID(ownerAddr))
}

func TestSubmitNFTMint_StorageReplay(t *testing.T) {
	f := newFixture(t)
	req := mintRequest(42)
	sig, err := loopring.SignNFTMint(f.key, req)
	require.NoError(t, err)

	_, err = f.client.SubmitNFTMint(context.Background(), apiKey, req, sig)
	require.NoError(t, err)

	_, err = f.client.SubmitNFTMint(context.Background(), apiKey, req, sig)
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeInvalidStorage, apiErr.Code)
	assert.Len(t, f.srv.Mints(), 1)
}

func TestSubmitNFTMint_TamperedRequest(t *testing.T) {
	f := newFixture(t)
	req := mintRequest(42)
	sig, err := loopring.SignNFTMint(f.key, req)
	require.NoError(t, err)

	req.Amount = "101"
	_, err = f.client.SubmitNFTMint(context.Background(), apiKey, req, sig)
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeInvalidSig, apiErr.Code)
}

func TestSubmitNFTMint_Expired(t *testing.T) {
	f := newFixture(t)
	req := mintRequest(42)
	req.ValidUntil = time.Now().Add(-time.Minute).Unix()
	sig, err := loopring.SignNFTMint(f.key, req)
	require.NoError(t, err)

	_, err = f.client.SubmitNFTMint(context.Background(), apiKey, req, sig)
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, loopring.CodeExpired, apiErr.Code)
}

func TestDo_EnvelopeOnSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resultInfo":{"code":100001,"message":"bad"}}`))
	}))
	defer srv.Close()

	client, err := loopring.NewClient(srv.URL, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = client.GetExchangeInfo(context.Background())
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.HTTPStatus)
	assert.Equal(t, 100001, apiErr.Code)
	assert.Equal(t, "bad", apiErr.Message)
}

func TestDo_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := loopring.NewClient(srv.URL, loopring.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	_, err = client.GetExchangeInfo(context.Background())
	var apiErr *loopring.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.HTTPStatus)
	assert.Contains(t, apiErr.Message, "gateway down")
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client, err := loopring.NewClient(base,
		loopring.WithLogger(zerolog.Nop()),
		loopring.WithHTTPClient(&http.Client{Timeout: time.Second}),
	)
	require.NoError(t, err)

	_, err = client.GetExchangeInfo(context.Background())
	assert.ErrorIs(t, err, loopring.ErrTransport)
}

func TestRequestSignatureBase(t *testing.T) {
	endpoint, err := url.Parse("https://api3.loopring.io/api/v3/apiKey")
	require.NoError(t, err)
	q := url.Values{}
	q.Set("accountId", "7")

	got := loopring.RequestSignatureBase("GET", endpoint, q)
	assert.Equal(t, "GET&https%3A%2F%2Fapi3.loopring.io%2Fapi%2Fv3%2FapiKey&accountId%3D7", got)
}

func TestSignRequest_Verifies(t *testing.T) {
	key, err := eddsa.KeyPairFromSeed([]byte("request signer"))
	require.NoError(t, err)
	endpoint, err := url.Parse("http://127.0.0.1:8080/api/v3/apiKey")
	require.NoError(t, err)
	q := url.Values{"accountId": {"7"}}

	sig, err := loopring.SignRequest(key, http.MethodGet, endpoint, q)
	require.NoError(t, err)
	assert.True(t, loopring.VerifyRequest(key.PublicX, key.PublicY, http.MethodGet, endpoint, q, sig))

	q.Set("accountId", "8")
	assert.False(t, loopring.VerifyRequest(key.PublicX, key.PublicY, http.MethodGet, endpoint, q, sig))
}

func TestNFTMintHash_SensitiveToEveryField(t *testing.T) {
	base, err := loopring.NFTMintHash(mintRequest(42))
	require.NoError(t, err)

	mutations := map[string]func(r *loopring.NFTMintRequest){
		"storageId":  func(r *loopring.NFTMintRequest) { r.StorageID = 44 },
		"validUntil": func(r *loopring.NFTMintRequest) { r.ValidUntil++ },
		"fee":        func(r *loopring.NFTMintRequest) { r.MaxFee.Amount = "1001" },
		"nftId":      func(r *loopring.NFTMintRequest) { r.NFTID = "0x02" },
		"royalty":    func(r *loopring.NFTMintRequest) { r.RoyaltyPercentage = 6 },
		"token":      func(r *loopring.NFTMintRequest) { r.TokenAddress = "" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := mintRequest(42)
			mutate(req)
			h, err := loopring.NFTMintHash(req)
			require.NoError(t, err)
			assert.NotEqual(t, base.String(), h.String())
		})
	}
}

func TestNFTMintHash_InvalidInput(t *testing.T) {
	req := mintRequest(42)
	req.Amount = "lots"
	_, err := loopring.NFTMintHash(req)
	assert.Error(t, err)

	req = mintRequest(42)
	req.NFTID = "0xzz"
	_, err = loopring.NFTMintHash(req)
	assert.Error(t, err)
}

func TestMintPoseidonInstances_KnownAnswers(t *testing.T) {
	in := func(n int) []*big.Int {
		out := make([]*big.Int, n)
		for i := range out {
			out[i] = big.NewInt(int64(i + 1))
		}
		return out
	}

	nftData, err := eddsa.HashPoseidon(loopring.NFTDataParams, in(6)...)
	require.NoError(t, err)
	assert.Equal(t, "21160344596970027080059151743398057034752456133711635836240729260801999907828", nftData.String())

	mint, err := eddsa.HashPoseidon(loopring.NFTMintParams, in(9)...)
	require.NoError(t, err)
	assert.Equal(t, "14009896355544772876587441483194550140792690560808182448631622163190088355781", mint.String())
}
