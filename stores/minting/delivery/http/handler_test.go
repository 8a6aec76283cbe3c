package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/estatemint/goapi/base/ctx"
	bValidator "github.com/estatemint/goapi/base/validator"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/domain/minting"
	"github.com/estatemint/goapi/domain/minting/mocks"
)

const mintBody = `{"name":"Test House","bedrooms":3,"bathrooms":2.0,"sqft_living":1500,"sqft_lot":5000,"floors":1,"waterfront":0,"view":0,"condition":3,"grade":7,"sqft_above":1500,"sqft_basement":0,"yr_built":1987,"yr_renovated":0,"zipcode":98052,"lat":47.68,"long":-122.12,"sqft_living15":1440,"sqft_lot15":5200,"month":5,"year":2015}`

type handlerSuite struct {
	suite.Suite

	e       *echo.Echo
	usecase *mocks.Usecase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(goValidator.New())
	s.usecase = &mocks.Usecase{}
	New(s.e, s.usecase)
}

func (s *handlerSuite) TearDownTest() {
	s.usecase.AssertExpectations(s.T())
}

func (s *handlerSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", bCtx.Background())
	s.e.Router().Find(method, target, c)
	if err := c.Handler()(c); err != nil {
		s.e.HTTPErrorHandler(err, c)
	}
	return rec
}

func (s *handlerSuite) TestMintSuccess() {
	s.usecase.On("Mint", mock.Anything, mock.Anything).Return(&minting.MintResult{
		TxHash: "0x4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd",
		Price:  450000.0,
	}, nil).Once()

	rec := s.serve(nethttp.MethodPost, "/mint-nft", mintBody)
	s.Equal(nethttp.StatusOK, rec.Code)

	resp := map[string]string{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("0x4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd", resp["transaction_hash"])
	s.Equal("NFT minted successfully.", resp["message"])
}

func (s *handlerSuite) TestMintBadBody() {
	rec := s.serve(nethttp.MethodPost, "/mint-nft", `{"name":`)
	s.Equal(nethttp.StatusBadRequest, rec.Code)
	s.usecase.AssertNotCalled(s.T(), "Mint", mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestMintMissingName() {
	rec := s.serve(nethttp.MethodPost, "/mint-nft", `{"bedrooms":3}`)
	s.Equal(nethttp.StatusBadRequest, rec.Code)
	s.usecase.AssertNotCalled(s.T(), "Mint", mock.Anything, mock.Anything)
}

// a timed-out confirmation and a rejected submission must be
// distinguishable from the response alone
func (s *handlerSuite) TestMintTimeoutVsRejected() {
	s.usecase.On("Mint", mock.Anything, mock.Anything).Return(nil, domain.ErrConfirmationTimeout).Once()
	timeoutRec := s.serve(nethttp.MethodPost, "/mint-nft", mintBody)
	s.Equal(nethttp.StatusGatewayTimeout, timeoutRec.Code)
	s.Contains(timeoutRec.Body.String(), "check manually")

	s.usecase.On("Mint", mock.Anything, mock.Anything).Return(nil, domain.ErrSubmissionRejected).Once()
	rejectedRec := s.serve(nethttp.MethodPost, "/mint-nft", mintBody)
	s.Equal(nethttp.StatusBadRequest, rejectedRec.Code)
	s.Contains(rejectedRec.Body.String(), "rejected")

	s.NotEqual(timeoutRec.Body.String(), rejectedRec.Body.String())
}

func (s *handlerSuite) TestMintUpstreamUnavailable() {
	s.usecase.On("Mint", mock.Anything, mock.Anything).Return(nil, domain.ErrUpstreamUnavailable).Once()
	rec := s.serve(nethttp.MethodPost, "/mint-nft", mintBody)
	s.Equal(nethttp.StatusBadGateway, rec.Code)
}

func (s *handlerSuite) TestGetMetadata() {
	s.usecase.On("GetMetadata", mock.Anything, domain.TokenId(7)).Return(&minting.TokenMetadata{
		TokenId:  7,
		Metadata: json.RawMessage(`{"name":"Test House"}`),
	}, nil).Once()

	rec := s.serve(nethttp.MethodGet, "/get-metadata/7", "")
	s.Equal(nethttp.StatusOK, rec.Code)
	s.JSONEq(`{"token_id":7,"metadata":{"name":"Test House"}}`, rec.Body.String())
}

func (s *handlerSuite) TestGetMetadataEmptyObjectOnUnparsable() {
	s.usecase.On("GetMetadata", mock.Anything, domain.TokenId(8)).Return(&minting.TokenMetadata{
		TokenId:  8,
		Metadata: json.RawMessage("{}"),
	}, nil).Once()

	rec := s.serve(nethttp.MethodGet, "/get-metadata/8", "")
	s.Equal(nethttp.StatusOK, rec.Code)
	s.JSONEq(`{"token_id":8,"metadata":{}}`, rec.Body.String())
}

func (s *handlerSuite) TestGetMetadataRejectsNonPositiveId() {
	for _, id := range []string{"0", "-3", "abc"} {
		rec := s.serve(nethttp.MethodGet, "/get-metadata/"+id, "")
		s.Equal(nethttp.StatusBadRequest, rec.Code, id)
	}
	s.usecase.AssertNotCalled(s.T(), "GetMetadata", mock.Anything, mock.Anything)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}
