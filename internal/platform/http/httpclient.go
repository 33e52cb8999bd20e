// Package http は外部APIアクセス用に調整済みのHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// 外部カードAPIへのアクセスを想定した接続パラメータ。
// http.DefaultClientはタイムアウトを持たないため必ずこちらを使うこと。
const (
	dialTimeout         = 5 * time.Second
	keepAlive           = 30 * time.Second
	maxIdleConns        = 100
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
)

// NewHTTPClient はリクエスト全体のタイムアウトを指定してHTTPクライアントを作成します。
// Transportを明示的に組むことで、接続プールの上限とTCP/TLSの各段階の
// タイムアウトを制御します。プロキシは環境変数（HTTP_PROXY等）に従います。
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}
