package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eos420/indexer-api/internal/adapter"
	"github.com/eos420/indexer-api/internal/api/rest"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/domain"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/manager"
	"github.com/eos420/indexer-api/internal/mocks"
	"github.com/eos420/indexer-api/internal/store"
	"github.com/eos420/indexer-api/internal/store/schema"
)

const chainID = "eip155:1"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// testHandlerMocks contains all the mocks needed for testing the handlers
type testHandlerMocks struct {
	ctrl   *gomock.Controller
	store  *mocks.MockStore
	router *gin.Engine
}

// setupTest wires the routes to real managers over a mock store
func setupTest(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)

	managers, err := manager.New(st, cache.DefaultConfig(), adapter.NewClock(), nil)
	require.NoError(t, err)

	pool := pond.NewPool(4)
	t.Cleanup(pool.StopAndWait)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(managers, pool))

	return &testHandlerMocks{
		ctrl:   ctrl,
		store:  st,
		router: router,
	}
}

// tearDownTest cleans up test resources
func tearDownTest(mocks *testHandlerMocks) {
	mocks.ctrl.Finish()
}

func (m *testHandlerMocks) do(method, target string, body string, contentType string) (int, map[string]any) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	m.router.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec.Code, out
}

func (m *testHandlerMocks) get(target string) (int, map[string]any) {
	return m.do(http.MethodGet, target, "", "")
}

func ptr[T any](v T) *T {
	return &v
}

func latestOne(filters ...store.Filter) store.Query {
	return store.Query{Filters: filters, Orders: []store.Order{store.Latest}, Limit: 1}
}

func pageOf(size, page int, filters ...store.Filter) store.Query {
	return store.Query{Filters: filters, Orders: []store.Order{store.Latest}, Limit: size, Offset: size * page}
}

func fungibleContract() schema.Contract {
	return schema.Contract{
		ID:       30,
		ClassID:  1,
		ChainID:  chainID,
		AssetID:  "pepe",
		Address:  "0xcontract",
		Protocol: domain.ContractTypeEOS20,
		Decimals: ptr(int32(8)),
		State:    domain.ContractStateDeployed,
	}
}

func fungibleClass() *schema.Class {
	return &schema.Class{ID: 1, Type: domain.ClassTypeFungible, Name: "pepe", Symbol: "PEPE"}
}

func nonFungibleContract() schema.Contract {
	return schema.Contract{
		ID:       31,
		ClassID:  2,
		ChainID:  chainID,
		AssetID:  "punk",
		Address:  "0xpunk",
		Protocol: domain.ContractTypeEOS420,
		State:    domain.ContractStateDeployed,
	}
}

func nonFungibleClass() *schema.Class {
	return &schema.Class{ID: 2, Type: domain.ClassTypeNonFungible, Name: "punk", Symbol: "PUNK"}
}

func findContract(assetID string) store.Query {
	return latestOne(store.Eq("chain_id", chainID), store.Eq("asset_id", assetID))
}

func assertError(t *testing.T, body map[string]any, code string, description string) {
	t.Helper()
	assert.Equal(t, code, body["error"])
	if description == "" {
		assert.NotContains(t, body, "error_description")
		return
	}
	assert.Equal(t, description, body["error_description"])
}

// =============================================================================
// Health & status
// =============================================================================

func TestHealthCheck(t *testing.T) {
	mocks := setupTest(t)
	defer tearDownTest(mocks)

	code, body := mocks.get("/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetStatus(t *testing.T) {
	t.Run("missing chain_id", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/status")
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Missing mandatory parameter `chain_id`")
	})

	t.Run("counts by outcome", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		chain := store.Eq("chain_id", chainID)
		assets := store.In("asset_id", []string{"pepe", "doge"})
		mocks.store.EXPECT().
			CountExtrinsics(gomock.Any(), chain, assets, store.In("state", domain.PendingStates)).
			Return(int64(4), nil)
		mocks.store.EXPECT().
			CountExtrinsics(gomock.Any(), chain, assets, store.In("state", []domain.BlockState{domain.BlockStateFinalized})).
			Return(int64(10), nil)
		mocks.store.EXPECT().
			CountExtrinsics(gomock.Any(), chain, assets, store.In("state", []domain.BlockState{domain.BlockStateDropped})).
			Return(int64(0), errors.New("connection reset"))

		code, body := mocks.get("/api/v1/status?chain_id=" + url.QueryEscape(chainID) + "&asset_id[]=pepe&asset_id[]=doge")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]any{"pending": float64(4), "finalized": float64(10), "dropped": float64(0)}, body)
	})
}

// =============================================================================
// Tokens
// =============================================================================

func TestListTokens(t *testing.T) {
	t.Run("missing chain_id", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/token")
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Missing mandatory parameter `chain_id`")
	})

	t.Run("malformed size", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/token?chain_id=c&size=ten")
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Malformed request")
	})

	t.Run("pages newest first", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		filters := []store.Filter{store.Eq("chain_id", chainID), store.In("protocol", []domain.ContractType{domain.ContractTypeEOS20})}
		mocks.store.EXPECT().CountContracts(gomock.Any(), filters[0], filters[1]).Return(int64(250), nil)
		mocks.store.EXPECT().
			FindContracts(gomock.Any(), pageOf(100, 2, filters...)).
			Return([]schema.Contract{fungibleContract()}, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(1)).Return(fungibleClass(), nil)
		mocks.store.EXPECT().CountAssetHolders(gomock.Any(), int64(30)).Return(int64(12), nil)

		code, body := mocks.get("/api/v1/token?chain_id=" + url.QueryEscape(chainID) + "&protocol=eos20&size=500&page=2")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(100), body["size"])
		assert.Equal(t, float64(2), body["page"])
		assert.Equal(t, float64(3), body["total"])

		data := body["data"].([]any)
		require.Len(t, data, 1)
		token := data[0].(map[string]any)
		assert.Equal(t, "pepe", token["id"])
		assert.Equal(t, "PEPE", token["symbol"])
		assert.Equal(t, "0x0", token["supply"])
		assert.Equal(t, float64(12), token["holder_count"])
	})

	t.Run("skips rows that cannot render", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		orphan := nonFungibleContract()
		orphan.ID = 32
		orphan.ClassID = 99

		mocks.store.EXPECT().CountContracts(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		mocks.store.EXPECT().
			FindContracts(gomock.Any(), pageOf(10, 0, store.Eq("chain_id", chainID))).
			Return([]schema.Contract{orphan, nonFungibleContract()}, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(99)).Return(nil, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(2)).Return(nonFungibleClass(), nil)
		mocks.store.EXPECT().CountAssets(gomock.Any(), store.Eq("contract_id", int64(31))).Return(int64(420), nil)
		mocks.store.EXPECT().CountAssetHolders(gomock.Any(), int64(31)).Return(int64(7), nil)

		code, body := mocks.get("/api/v1/token?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["total"])

		data := body["data"].([]any)
		require.Len(t, data, 1)
		token := data[0].(map[string]any)
		assert.Equal(t, "punk", token["id"])
		assert.Equal(t, "0x1a4", token["supply"])
	})

	t.Run("huge page is clamped", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		query := pageOf(100, rest.MAX_PAGE, store.Eq("chain_id", chainID))
		require.Positive(t, query.Offset)

		mocks.store.EXPECT().CountContracts(gomock.Any(), gomock.Any()).Return(int64(3), nil)
		mocks.store.EXPECT().FindContracts(gomock.Any(), query).Return(nil, nil)

		code, body := mocks.get("/api/v1/token?chain_id=" + url.QueryEscape(chainID) + "&size=100&page=9223372036854775807")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(rest.MAX_PAGE), body["page"])
		assert.Empty(t, body["data"])
	})
}

func TestGetToken(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("nope")).Return(nil, nil)

		code, body := mocks.get("/api/v1/token/nope?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusNotFound, code)
		assertError(t, body, "not_found", "Contract not found")
	})

	t.Run("found without class", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("pepe")).Return([]schema.Contract{fungibleContract()}, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(1)).Return(nil, errors.New("timeout"))

		code, body := mocks.get("/api/v1/token/pepe?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusInternalServerError, code)
		assertError(t, body, "impossible", "")
	})

	t.Run("found", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("pepe")).Return([]schema.Contract{fungibleContract()}, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(1)).Return(fungibleClass(), nil)
		mocks.store.EXPECT().CountAssetHolders(gomock.Any(), int64(30)).Return(int64(3), nil)

		code, body := mocks.get("/api/v1/token/pepe?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, chainID, data["chain_id"])
		assert.Equal(t, "fungible", data["type"])
		assert.Equal(t, "eos20", data["protocol"])
		assert.Equal(t, float64(8), data["decimals"])
		assert.Equal(t, "0x1a055690d9db80000", data["fee"])
		assert.Equal(t, float64(3), data["holder_count"])
	})
}

func TestGetTokenHolders(t *testing.T) {
	mocks := setupTest(t)
	defer tearDownTest(mocks)

	mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("punk")).Return([]schema.Contract{nonFungibleContract()}, nil)
	mocks.store.EXPECT().AssetHolders(gomock.Any(), int64(31), domain.HolderLimit).Return([]store.HolderCount{
		{Address: "0xc", Count: 3},
		{Address: "0xb", Count: 2},
	}, nil)

	code, body := mocks.get("/api/v1/token/punk/holder?chain_id=" + url.QueryEscape(chainID))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{
		[]any{"0xc", float64(3)},
		[]any{"0xb", float64(2)},
	}, body["data"])
}

func TestDeployToken(t *testing.T) {
	t.Run("json quote", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("frog")).Return(nil, nil)

		code, body := mocks.do(http.MethodPost, "/api/v1/token",
			`{"chain_id":"eip155:1","name":"frog","protocol":"eos420"}`, "application/json")
		assert.Equal(t, http.StatusAccepted, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, chainID, data["chain_id"])
		assert.Equal(t, "frog", data["name"])
		assert.Equal(t, "frog", data["symbol"])
		assert.Equal(t, "non-fungible", data["type"])
		assert.Equal(t, "eos420", data["protocol"])
		assert.Equal(t, domain.DeployTargetAddress, data["to_address"])
		assert.Equal(t, "0x1a055690d9db80000", data["fee"])
		assert.NotContains(t, data, "id")
	})

	t.Run("form quote with defaults", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("frog")).Return(nil, nil)

		form := url.Values{"chain_id": {chainID}, "name": {"frog"}, "address": {"0x" + domain.DeployTargetAddress}}
		code, body := mocks.do(http.MethodPost, "/api/v1/token", form.Encode(), "application/x-www-form-urlencoded")
		assert.Equal(t, http.StatusAccepted, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "fungible", data["type"])
		assert.Equal(t, "erc20", data["protocol"])
		assert.Equal(t, "0x"+domain.DeployTargetAddress, data["owner"])
	})

	t.Run("name taken", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("pepe")).Return([]schema.Contract{fungibleContract()}, nil)

		code, body := mocks.do(http.MethodPost, "/api/v1/token", `{"chain_id":"eip155:1","name":"pepe"}`, "application/json")
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "conflict", "Token name already taken")
	})

	t.Run("rejected before lookup", func(t *testing.T) {
		cases := []struct {
			name        string
			body        string
			description string
		}{
			{"malformed body", `{"chain_id":`, "Malformed request"},
			{"unknown protocol", `{"chain_id":"eip155:1","name":"frog","protocol":"brc20"}`, "Malformed request"},
			{"missing chain_id", `{"name":"frog"}`, "Missing mandatory parameter `chain_id`"},
			{"missing name", `{"chain_id":"eip155:1"}`, "Missing mandatory parameter `name`"},
			{"bad address", `{"chain_id":"eip155:1","name":"frog","address":"0x1234"}`, "Invalid address"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mocks := setupTest(t)
				defer tearDownTest(mocks)

				code, body := mocks.do(http.MethodPost, "/api/v1/token", tc.body, "application/json")
				assert.Equal(t, http.StatusBadRequest, code)
				assertError(t, body, "invalid_request", tc.description)
			})
		}
	})
}

// =============================================================================
// Transactions
// =============================================================================

func TestListTransactions(t *testing.T) {
	mocks := setupTest(t)
	defer tearDownTest(mocks)

	filters := []store.Filter{store.Eq("chain_id", chainID), store.Eq("block_hash", "0xblock")}
	mocks.store.EXPECT().CountTransactions(gomock.Any(), filters[0], filters[1]).Return(int64(0), nil)
	mocks.store.EXPECT().FindTransactions(gomock.Any(), pageOf(10, 0, filters...)).Return([]schema.Transaction{}, nil)

	code, body := mocks.get("/api/v1/transaction?chain_id=" + url.QueryEscape(chainID) + "&block=0xblock")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, []any{}, body["data"])
}

func TestGetTransaction(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().
			FindTransactions(gomock.Any(), latestOne(store.Eq("chain_id", chainID), store.Eq("tx_hash", "0xtx"))).
			Return(nil, nil)

		code, body := mocks.get("/api/v1/transaction/0xtx?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusNotFound, code)
		assertError(t, body, "not_found", "Transaction not found")
	})

	t.Run("pending transaction has no block", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().
			FindTransactions(gomock.Any(), latestOne(store.Eq("chain_id", chainID), store.Eq("tx_hash", "0xtx"))).
			Return([]schema.Transaction{{ID: 5, ChainID: chainID, TxHash: "0xtx", FromAddress: "0xfrom", Value: "0x10"}}, nil)

		code, body := mocks.get("/api/v1/transaction/0xtx?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, chainID, data["chain_id"])
		assert.Equal(t, "0xtx", data["hash"])
		assert.Equal(t, "0x10", data["value"])
		assert.NotContains(t, data, "block_number")
	})
}

// =============================================================================
// Extrinsics
// =============================================================================

func TestListExtrinsics(t *testing.T) {
	mocks := setupTest(t)
	defer tearDownTest(mocks)

	addresses := []string{"0xa", "0xb"}
	filters := []store.Filter{
		store.Eq("chain_id", chainID),
		store.Eq("tx_hash", "0xtx"),
		store.In("asset_id", []string{"pepe"}),
		store.Or(store.In("from_address", addresses), store.In("to_address", addresses)),
		store.In("state", []domain.BlockState{domain.BlockStateFinalized, domain.BlockStateDropped}),
	}
	mocks.store.EXPECT().
		CountExtrinsics(gomock.Any(), filters[0], filters[1], filters[2], filters[3], filters[4]).
		Return(int64(11), nil)
	mocks.store.EXPECT().FindExtrinsics(gomock.Any(), pageOf(5, 1, filters...)).Return(nil, nil)

	code, body := mocks.get("/api/v1/extrinsic?chain_id=" + url.QueryEscape(chainID) +
		"&tx_hash=0xtx&asset_id=pepe&address=0xa&address[]=0xb&size=5&page=1")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(5), body["size"])
}

func TestGetExtrinsic(t *testing.T) {
	t.Run("bad index", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/extrinsic/0xtx/first?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Malformed request")
	})

	t.Run("not found", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		mocks.store.EXPECT().
			FindExtrinsics(gomock.Any(), latestOne(
				store.Eq("chain_id", chainID),
				store.Eq("tx_hash", "0xtx"),
				store.Eq("index", int64(2)),
			)).
			Return(nil, nil)

		code, body := mocks.get("/api/v1/extrinsic/0xtx/2?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusNotFound, code)
		assertError(t, body, "not_found", "Extrinsic not found")
	})
}

// =============================================================================
// Assets
// =============================================================================

func TestListAssets(t *testing.T) {
	t.Run("needs address or asset_id", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/asset?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Missing mandatory parameter `address`")
	})

	t.Run("by asset id without chain", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		assets := store.In("asset_id", []string{"punk"})
		mocks.store.EXPECT().CountAssets(gomock.Any(), assets).Return(int64(1), nil)
		mocks.store.EXPECT().FindAssets(gomock.Any(), pageOf(10, 0, assets)).Return([]schema.Asset{
			{ID: 9, ContractID: 31, ChainID: chainID, AssetID: "punk", Address: "0xc", Value: "7"},
		}, nil)
		mocks.store.EXPECT().GetContractByID(gomock.Any(), int64(31)).DoAndReturn(
			func(_ any, _ int64) (*schema.Contract, error) {
				contract := nonFungibleContract()
				return &contract, nil
			})
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(2)).Return(nonFungibleClass(), nil)
		mocks.store.EXPECT().
			FindLockedAssets(gomock.Any(), gomock.Any()).
			Return([]schema.LockedAsset{{ID: 1}}, nil)
		mocks.store.EXPECT().
			FindContracts(gomock.Any(), findContract("punk")).
			Return([]schema.Contract{nonFungibleContract()}, nil).
			AnyTimes()

		code, body := mocks.get("/api/v1/asset?asset_id[]=punk")
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].([]any)
		require.Len(t, data, 1)
		asset := data[0].(map[string]any)
		assert.Equal(t, "punk", asset["asset_id"])
		assert.Equal(t, "7", asset["identifier"])
		assert.Equal(t, true, asset["locked"])
	})
}

func TestGetAsset(t *testing.T) {
	t.Run("missing address", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		code, body := mocks.get("/api/v1/asset/pepe?chain_id=" + url.QueryEscape(chainID))
		assert.Equal(t, http.StatusBadRequest, code)
		assertError(t, body, "invalid_request", "Missing mandatory parameter `address`")
	})

	t.Run("balance", func(t *testing.T) {
		mocks := setupTest(t)
		defer tearDownTest(mocks)

		contract := fungibleContract()
		mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("pepe")).Return([]schema.Contract{contract}, nil)
		mocks.store.EXPECT().
			FindAssets(gomock.Any(), latestOne(store.Eq("contract_id", int64(30)), store.Eq("address", "0xc"))).
			Return([]schema.Asset{{ID: 8, ContractID: 30, ChainID: chainID, AssetID: "pepe", Address: "0xc", Value: "250000000"}}, nil)
		mocks.store.EXPECT().GetContractByID(gomock.Any(), int64(30)).Return(&contract, nil)
		mocks.store.EXPECT().GetClassByID(gomock.Any(), int64(1)).Return(fungibleClass(), nil)

		code, body := mocks.get("/api/v1/asset/pepe?chain_id=" + url.QueryEscape(chainID) + "&address=0xc")
		assert.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]any)
		assert.Equal(t, float64(2.5), data["amount"])
		assert.NotContains(t, data, "locked")
	})
}

func TestGetAssetInstance(t *testing.T) {
	mocks := setupTest(t)
	defer tearDownTest(mocks)

	mocks.store.EXPECT().FindContracts(gomock.Any(), findContract("pepe")).Return([]schema.Contract{fungibleContract()}, nil)

	code, body := mocks.get("/api/v1/asset/pepe/1?chain_id=" + url.QueryEscape(chainID))
	assert.Equal(t, http.StatusNotFound, code)
	assertError(t, body, "not_found", "Asset not found")
}
