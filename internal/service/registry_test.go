package service

import (
	"context"
	"errors"
	"testing"

	"github.com/GriffinCanCode/approx/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/approx/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
	id       string
	category types.Category
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryMath
	}
	return types.Service{
		ID:          m.id,
		Name:        "Mock Service",
		Description: "A mock service for testing",
		Category:    category,
		Tools: []types.Tool{
			{ID: m.id + ".test", Name: "Test Tool", Description: "A test tool", Returns: "number"},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(toolID, params)
	res, _ := args.Get(0).(*types.Result)
	return res, args.Error(1)
}

func TestRegister(t *testing.T) {
	r := NewRegistry(nil, nil)

	require.NoError(t, r.Register(&mockProvider{id: "test"}))
	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: "test"}), "duplicate ids are rejected")
	assert.Error(t, r.Register(&mockProvider{id: ""}))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
}

func TestListAndTools(t *testing.T) {
	r := NewRegistry(nil, nil)
	require.NoError(t, r.Register(&mockProvider{id: "zeta"}))
	require.NoError(t, r.Register(&mockProvider{id: "alpha", category: types.CategoryCalculus}))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "alpha", services[0].ID)

	cat := types.CategoryCalculus
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "alpha", filtered[0].ID)

	tools := r.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "alpha.test", tools[0].ID)
}

func TestExecute(t *testing.T) {
	metrics := monitoring.NewMetrics()
	r := NewRegistry(nil, metrics)
	p := &mockProvider{id: "test"}
	require.NoError(t, r.Register(p))

	params := map[string]interface{}{"x": 1.0}
	p.On("Execute", "test.test", params).Return(&types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": 2.0},
	}, nil).Once()

	result, err := r.Execute(context.Background(), "test.test", params, &types.Context{RequestID: "req_1"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2.0, result.Data["result"])
	p.AssertExpectations(t)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolCalls.WithLabelValues("test.test", "success")))
}

func TestExecuteFailures(t *testing.T) {
	metrics := monitoring.NewMetrics()
	r := NewRegistry(nil, metrics)
	p := &mockProvider{id: "test"}
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "notool", nil, nil)
	assert.Error(t, err)
	assert.False(t, result.Success)

	result, err = r.Execute(context.Background(), "missing.tool", nil, nil)
	assert.EqualError(t, err, "service not found: missing")
	assert.Equal(t, "service not found: missing", *result.Error)

	msg := "x parameter required"
	p.On("Execute", "test.bad", mock.Anything).Return(&types.Result{Success: false, Error: &msg}, nil).Once()
	result, err = r.Execute(context.Background(), "test.bad", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolErrors.WithLabelValues("test.bad", "invalid_argument")))

	boom := errors.New("boom")
	p.On("Execute", "test.boom", mock.Anything).Return(nil, boom).Once()
	_, err = r.Execute(context.Background(), "test.boom", nil, nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolCalls.WithLabelValues("test.boom", "error")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Execute(ctx, "test.test", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	p.AssertExpectations(t)
}

func TestStats(t *testing.T) {
	r := NewRegistry(nil, nil)
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 2}, stats["categories"])
}
