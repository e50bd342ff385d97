// Package loopringtest runs an in-process fake of the exchange endpoints the
// mint flow touches. It enforces what the real exchange enforces for a mint:
// registered keys on X-API-SIG, API keys on X-API-KEY, storage id order,
// signature validity and request expiry.
package loopringtest

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MMN3003/loopmint/src/Infrastructure/eddsa"
	"github.com/MMN3003/loopmint/src/Infrastructure/loopring"
)

// Account is a registered exchange account.
type Account struct {
	AccountID uint32
	Owner     string
	Nonce     uint32
	KeySeed   string
	PublicX   string
	PublicY   string
	APIKey    string

	// NextStorageID is the next free storage id for token 0.
	NextStorageID uint32
}

type Server struct {
	*httptest.Server

	ExchangeAddress string
	ChainID         int64

	// Now is the exchange clock used for expiry checks.
	Now func() time.Time

	mu          sync.Mutex
	accounts    map[string]*Account
	fees        map[string]string
	reject      *loopring.ResultInfo
	feeFailure  *failure
	mints       []loopring.SignedNFTMint
	calls       map[string]int
	nextTokenID uint32
}

// NewServer starts a fake exchange; it is closed by t.Cleanup in callers or Close.
func NewServer(exchangeAddress string, chainID int64) *Server {
	s := &Server{
		ExchangeAddress: exchangeAddress,
		ChainID:         chainID,
		Now:             time.Now,
		accounts:        map[string]*Account{},
		fees:            map[string]string{"ETH": "1000"},
		calls:           map[string]int{},
		nextTokenID:     32768,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.count)

	r.Route("/api/v3", func(r chi.Router) {
		r.Get("/exchange/info", s.exchangeInfo)
		r.Get("/account", s.account)
		r.Get("/apiKey", s.apiKey)
		r.Get("/storageId", s.storageID)
		r.Get("/user/nft/offchainFee", s.offchainFee)
		r.Post("/nft/mint", s.mint)
	})

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) AddAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := a
	s.accounts[strings.ToLower(a.Owner)] = &acc
}

// SetFees replaces the fee table returned by the fee endpoint.
func (s *Server) SetFees(fees map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fees = fees
}

// RejectMints makes every following mint fail with code and message.
func (s *Server) RejectMints(code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reject = &loopring.ResultInfo{Code: code, Message: message}
}

type failure struct {
	status int
	info   loopring.ResultInfo
}

// FailFees makes every following fee request fail with status and code.
func (s *Server) FailFees(status, code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeFailure = &failure{status: status, info: loopring.ResultInfo{Code: code, Message: message}}
}

// Mints returns the accepted mint bodies.
func (s *Server) Mints() []loopring.SignedNFTMint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]loopring.SignedNFTMint(nil), s.mints...)
}

// Calls is how many requests hit path, accepted or not.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func (s *Server) NextStorageID(owner string) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[strings.ToLower(owner)]; ok {
		return acc.NextStorageID
	}
	return 0
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) exchangeInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, loopring.ExchangeInfo{
		ChainID:         s.ChainID,
		ExchangeAddress: s.ExchangeAddress,
		DepositAddress:  s.ExchangeAddress,
	})
}

func (s *Server) account(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acc, ok := s.accounts[strings.ToLower(r.URL.Query().Get("owner"))]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusBadRequest, loopring.CodeAccountNotFound, "account not found")
		return
	}

	writeJSON(w, http.StatusOK, loopring.Account{
		AccountID: acc.AccountID,
		Owner:     acc.Owner,
		PublicKey: loopring.PublicKey{X: acc.PublicX, Y: acc.PublicY},
		Nonce:     acc.Nonce,
		KeySeed:   acc.KeySeed,
	})
}

func (s *Server) apiKey(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	acc := s.byID(q.Get("accountId"))
	if acc == nil {
		writeError(w, http.StatusBadRequest, loopring.CodeAccountNotFound, "account not found")
		return
	}

	pubX, pubY, ok := publicKey(acc)
	endpoint := &url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	if !ok || !loopring.VerifyRequest(pubX, pubY, r.Method, endpoint, q, r.Header.Get("X-API-SIG")) {
		writeError(w, http.StatusUnauthorized, loopring.CodeInvalidAPISig, "invalid api signature")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"apiKey": acc.APIKey})
}

func (s *Server) storageID(w http.ResponseWriter, r *http.Request) {
	acc, ok := s.authorize(w, r, r.URL.Query().Get("accountId"))
	if !ok {
		return
	}

	s.mu.Lock()
	next := acc.NextStorageID
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, loopring.StorageID{OrderID: next, OffchainID: next})
}

func (s *Server) offchainFee(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authorize(w, r, r.URL.Query().Get("accountId")); !ok {
		return
	}

	s.mu.Lock()
	if f := s.feeFailure; f != nil {
		s.mu.Unlock()
		writeError(w, f.status, f.info.Code, f.info.Message)
		return
	}
	tokens := make([]string, 0, len(s.fees))
	for token := range s.fees {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	out := loopring.OffchainFee{GasPrice: "1000000000"}
	for _, token := range tokens {
		out.Fees = append(out.Fees, loopring.TokenFee{Token: token, Fee: s.fees[token], Discount: 1})
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) mint(w http.ResponseWriter, r *http.Request) {
	var body loopring.SignedNFTMint
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, 100001, "invalid request body")
		return
	}

	acc, ok := s.authorize(w, r, strconv.FormatUint(uint64(body.MinterID), 10))
	if !ok {
		return
	}

	if body.ValidUntil <= s.Now().Unix() {
		writeError(w, http.StatusBadRequest, loopring.CodeExpired, "order is expired")
		return
	}

	pubX, pubY, ok := publicKey(acc)
	if !ok || !loopring.VerifyNFTMint(pubX, pubY, &body.NFTMintRequest, body.EddsaSignature) {
		writeError(w, http.StatusBadRequest, loopring.CodeInvalidSig, "invalid eddsa signature")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if body.StorageID != acc.NextStorageID {
		writeError(w, http.StatusBadRequest, loopring.CodeInvalidStorage, "invalid storageId")
		return
	}
	if s.reject != nil {
		writeError(w, http.StatusBadRequest, s.reject.Code, s.reject.Message)
		return
	}

	hash, err := loopring.NFTMintHash(&body.NFTMintRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, 100001, err.Error())
		return
	}
	nftData, err := loopring.NFTData(&body.NFTMintRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, 100001, err.Error())
		return
	}

	acc.NextStorageID += 2
	s.mints = append(s.mints, body)
	s.nextTokenID++

	writeJSON(w, http.StatusOK, loopring.NFTMintResponse{
		Hash:       eddsa.Hex(hash),
		NFTTokenID: s.nextTokenID,
		NFTData:    eddsa.Hex(nftData),
		Status:     "processing",
		AccountID:  acc.AccountID,
		StorageID:  body.StorageID,
	})
}

// authorize resolves accountID and checks X-API-KEY, writing the error itself.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request, accountID string) (*Account, bool) {
	acc := s.byID(accountID)
	if acc == nil {
		writeError(w, http.StatusBadRequest, loopring.CodeAccountNotFound, "account not found")
		return nil, false
	}
	if key := r.Header.Get("X-API-KEY"); key == "" || key != acc.APIKey {
		writeError(w, http.StatusUnauthorized, loopring.CodeInvalidAPIKey, "invalid api key")
		return nil, false
	}
	return acc, true
}

func (s *Server) byID(raw string) *Account {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.AccountID == uint32(id) {
			return acc
		}
	}
	return nil
}

func publicKey(acc *Account) (*big.Int, *big.Int, bool) {
	x, okX := new(big.Int).SetString(strings.TrimPrefix(acc.PublicX, "0x"), 16)
	y, okY := new(big.Int).SetString(strings.TrimPrefix(acc.PublicY, "0x"), 16)
	return x, y, okX && okY
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, map[string]loopring.ResultInfo{
		"resultInfo": {Code: code, Message: message},
	})
}
