/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/estatemint/goapi/base/env"
	"github.com/estatemint/goapi/base/log"
)

const (
	ddPort = 8125
	// number of metrics buffered before flushing to the agent
	bufferMetrics = 10
	ddRate        = 1
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce = sync.Once{}
	ddClient statsCli
)

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		// no agent configured, metrics go to the log at debug level
		ddClient = &logClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	client, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, falling back to log metrics")
		ddClient = &logClient{}
		return
	}
	ddClient = client
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &metricsImpl{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type metricsImpl struct {
	pkgName string
	ddTags  []string
}

func (mt *metricsImpl) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *metricsImpl) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := ddClient.Gauge(mt.key(key), val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := ddClient.Count(mt.key(key), int64(val), append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := ddClient.Histogram(mt.key(key), val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer, End() on the returned value records the
// duration:
//
//     defer s.BumpTime("my.function.time").End()
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &ddTimeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  append(mt.ddTags, parseTag(tags)...),
	}
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type ddTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (dt *ddTimeTracker) End() {
	d := time.Since(dt.start)
	dur := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6

	initOnce.Do(initClient)
	if err := ddClient.TimeInMilliseconds(dt.key, dur, dt.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": dt.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
