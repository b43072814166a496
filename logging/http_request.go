package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// HTTPRequest Cloud Logging httpRequest Field
func HTTPRequest(req *HTTPPayload) zap.Field {
	return zap.Object("httpRequest", req)
}

// HTTPPayload Cloud Logging httpRequest Payload
type HTTPPayload struct {
	RequestMethod string `json:"requestMethod"`
	RequestURL    string `json:"requestUrl"`
	RequestSize   string `json:"requestSize"`
	Status        int    `json:"status"`
	ResponseSize  string `json:"responseSize"`
	UserAgent     string `json:"userAgent"`
	RemoteIP      string `json:"remoteIp"`
	Referer       string `json:"referer"`
	Latency       string `json:"latency"`
	// CacheLookup If-None-Matchによる条件付きリクエストか
	CacheLookup bool `json:"cacheLookup"`
	// CacheHit 304を返したか
	CacheHit bool   `json:"cacheHit"`
	Protocol string `json:"protocol"`
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (p HTTPPayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("requestMethod", p.RequestMethod)
	enc.AddString("requestUrl", p.RequestURL)
	enc.AddString("requestSize", p.RequestSize)
	enc.AddInt("status", p.Status)
	enc.AddString("responseSize", p.ResponseSize)
	enc.AddString("userAgent", p.UserAgent)
	enc.AddString("remoteIp", p.RemoteIP)
	enc.AddString("referer", p.Referer)
	enc.AddString("latency", p.Latency)
	enc.AddBool("cacheLookup", p.CacheLookup)
	enc.AddBool("cacheHit", p.CacheHit)
	enc.AddString("protocol", p.Protocol)
	return nil
}
