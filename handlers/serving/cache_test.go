package serving

import (
	"testing"

	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/inmemorycache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cachedHandler(mockCache *inmemorycache.MockInMemoryCacheClient) *Handler {
	inmemorycache.SetMockInstance(mockCache)
	appConfigs := &configs.AppConfigs{}
	appConfigs.Configs.ModelSchema = testSchemaJSON
	appConfigs.Configs.PredictionCacheEnabled = true
	appConfigs.Configs.PredictionCacheTTL = 60
	InitServingHandler(appConfigs, &fakeTransformer{outputName: "prediction", output: float64(0.5)})
	return Instance()
}

func TestProcessJSON_CacheMissStoresRenderedBody(t *testing.T) {
	mockCache := &inmemorycache.MockInMemoryCacheClient{}
	mockCache.On("Get", mock.Anything).Return(nil, assert.AnError)
	mockCache.On("SetEx", mock.Anything, []byte("0.5"), 60).Return(nil)
	h := cachedHandler(mockCache)

	unit, err := h.ProcessJSON([]byte(`{"data": [1.0, "a"]}`), MediaTypeCSV)

	require.NoError(t, err)
	assert.Equal(t, "0.5", unit.Body)
	mockCache.AssertExpectations(t)
}

func TestProcessJSON_CacheHitSkipsExecutor(t *testing.T) {
	mockCache := &inmemorycache.MockInMemoryCacheClient{}
	mockCache.On("Get", mock.Anything).Return([]byte("0.9"), nil)
	inmemorycache.SetMockInstance(mockCache)
	appConfigs := &configs.AppConfigs{}
	appConfigs.Configs.ModelSchema = testSchemaJSON
	appConfigs.Configs.PredictionCacheEnabled = true
	// Failing transformer proves the hit path never reaches the executor.
	InitServingHandler(appConfigs, &fakeTransformer{err: assert.AnError})
	h := Instance()

	unit, err := h.ProcessJSON([]byte(`{"data": [1.0, "a"]}`), MediaTypeCSV)

	require.NoError(t, err)
	assert.Equal(t, "0.9", unit.Body)
	mockCache.AssertNotCalled(t, "SetEx", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessJSON_SameRecordSameKey(t *testing.T) {
	mockCache := &inmemorycache.MockInMemoryCacheClient{}
	var keys [][]byte
	mockCache.On("Get", mock.Anything).Run(func(args mock.Arguments) {
		keys = append(keys, args.Get(0).([]byte))
	}).Return(nil, assert.AnError)
	mockCache.On("SetEx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	h := cachedHandler(mockCache)

	_, err := h.ProcessJSON([]byte(`{"data": [1.0, "a"]}`), MediaTypeCSV)
	assert.NoError(t, err)
	_, err = h.ProcessJSON([]byte(`{"data": [1.0, "a"]}`), MediaTypeCSV)
	assert.NoError(t, err)
	_, err = h.ProcessJSON([]byte(`{"data": [2.0, "a"]}`), MediaTypeCSV)
	assert.NoError(t, err)

	assert.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}
