package inmemorycache

import (
	"runtime/debug"
	"time"

	"github.com/Meesho/BharatMLStack/tabflow/pkg/metrics"
	"github.com/coocood/freecache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	metricUpdateInterval = 1 * time.Minute
	infiniteExpiry       = -1
)

type V1 struct {
	cacheName  string
	inMemCache *freecache.Cache
}

func newV1InMemoryCache(cName string) InMemoryCache {
	gcPercentage := -1
	sizeInBytes := defaultCacheSizeInBytes
	if viper.IsSet(inMemoryCacheSizeInBytes) {
		sizeInBytes = viper.GetInt(inMemoryCacheSizeInBytes)
	} else {
		log.Warn().Msgf("env::IN_MEMORY_CACHE_SIZE_IN_BYTES is not set, using default %d", sizeInBytes)
	}

	if !viper.IsSet(appGCPercentage) {
		log.Warn().Msgf("env::APP_GC_PERCENTAGE is not set")
	} else {
		gcPercentage = viper.GetInt(appGCPercentage)
	}

	v1InMemoryCache := &V1{
		cacheName:  cName,
		inMemCache: freecache.NewCache(sizeInBytes),
	}
	if gcPercentage != -1 {
		debug.SetGCPercent(gcPercentage)
	}
	go v1InMemoryCache.publishMetric()
	return v1InMemoryCache
}

func (imc *V1) Get(key []byte) ([]byte, error) {
	return imc.inMemCache.Get(key)
}

func (imc *V1) Set(key, value []byte) error {
	return imc.inMemCache.Set(key, value, infiniteExpiry)
}

func (imc *V1) SetEx(key, value []byte, expiryInSec int) error {
	return imc.inMemCache.Set(key, value, expiryInSec)
}

func (imc *V1) Delete(key []byte) bool {
	return imc.inMemCache.Del(key)
}

func (imc *V1) publishMetric() {
	tags := []string{"cache-name", imc.cacheName}
	for range time.Tick(metricUpdateInterval) {
		metrics.Gauge(HitRate, imc.inMemCache.HitRate(), tags)
		metrics.Gauge(ItemCount, float64(imc.inMemCache.EntryCount()), tags)
		metrics.Gauge(EvacuateCount, float64(imc.inMemCache.EvacuateCount()), tags)
		metrics.Gauge(ExpiryCount, float64(imc.inMemCache.ExpiredCount()), tags)
	}
}
