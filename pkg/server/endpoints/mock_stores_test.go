package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/investlab/vollab/pkg/marketdata"
	"github.com/investlab/vollab/pkg/rates"
)

// MockOptionsStore implements store.OptionsStore for testing using testify/mock
type MockOptionsStore struct {
	mock.Mock
}

func NewMockOptionsStore() *MockOptionsStore {
	return &MockOptionsStore{}
}

func (m *MockOptionsStore) SaveQuotes(records []marketdata.OptionRecord) error {
	args := m.Called(records)
	return args.Error(0)
}

func (m *MockOptionsStore) FetchQuotes(start, end time.Time, tickers ...string) ([]marketdata.OptionRecord, error) {
	args := m.Called(start, end, tickers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]marketdata.OptionRecord), args.Error(1)
}

// MockRatesStore implements store.RatesStore for testing using testify/mock
type MockRatesStore struct {
	mock.Mock
}

func NewMockRatesStore() *MockRatesStore {
	return &MockRatesStore{}
}

func (m *MockRatesStore) SaveCurves(curves []rates.Curve) error {
	args := m.Called(curves)
	return args.Error(0)
}

func (m *MockRatesStore) FetchCurves(start, end time.Time) ([]rates.Curve, error) {
	args := m.Called(start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rates.Curve), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
