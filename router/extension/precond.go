package extension

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/textproto"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/traPtitech/jazzicon/router/consts"
)

const weakPrefix = "W/"

type condResult int

const (
	condNone condResult = iota
	condTrue
	condFalse
)

// eTagJSON ETag計算用のJSON設定
//
// 同じ値からは常に同じバイト列が得られるようにマップのキーをソートする
var eTagJSON = jsoniter.Config{
	EscapeHTML:                    false,
	ObjectFieldMustBeSimpleString: true,
	SortMapKeys:                   true,
}.Froze()

func scanETag(s string) (eTag string, remain string) {
	s = textproto.TrimString(s)
	start := 0
	if strings.HasPrefix(s, weakPrefix) {
		start = 2
	}
	if len(s[start:]) < 2 || s[start] != '"' {
		return "", ""
	}
	for i := start + 1; i < len(s); i++ {
		if s[i] == '"' {
			return s[:i+1], s[i+1:]
		}
	}
	return "", ""
}

func eTagStrongMatch(a, b string) bool {
	return a == b && a != "" && a[0] == '"'
}

func eTagWeakMatch(a, b string) bool {
	return strings.TrimPrefix(a, weakPrefix) == strings.TrimPrefix(b, weakPrefix)
}

// checkETagList ヘッダーのETagリストにcurrentと一致するものがあるかどうか
func checkETagList(header, current string, match func(a, b string) bool) condResult {
	if header == "" {
		return condNone
	}
	for {
		header = textproto.TrimString(header)
		if len(header) == 0 {
			break
		}
		if header[0] == ',' {
			header = header[1:]
			continue
		}
		if header[0] == '*' {
			return condTrue
		}
		eTag, remain := scanETag(header)
		if eTag == "" {
			break
		}
		if match(eTag, current) {
			return condTrue
		}
		header = remain
	}
	return condFalse
}

func writeNotModified(c echo.Context) error {
	h := c.Response().Header()
	delete(h, echo.HeaderContentType)
	delete(h, echo.HeaderContentLength)
	return c.NoContent(http.StatusNotModified)
}

// CheckPreconditions HTTPリクエストのETagによる事前条件を検査します
//
// レスポンスヘッダーにETagが設定済みである必要があります
func CheckPreconditions(c echo.Context) (done bool, err error) {
	current := c.Response().Header().Get(consts.HeaderETag)

	if checkETagList(c.Request().Header.Get(consts.HeaderIfMatch), current, eTagStrongMatch) == condFalse {
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	if checkETagList(c.Request().Header.Get(consts.HeaderIfNoneMatch), current, eTagWeakMatch) == condTrue {
		if m := c.Request().Method; m == http.MethodGet || m == http.MethodHead {
			return true, writeNotModified(c)
		}
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	return false, nil
}

// ServeJSONWithETag ETagを付与してJSONを返します。304を返せるときは304を返します。
func ServeJSONWithETag(c echo.Context, i interface{}) error {
	var (
		b   []byte
		err error
	)
	if _, pretty := c.QueryParams()["pretty"]; pretty {
		b, err = eTagJSON.MarshalIndent(i, "", "  ")
	} else {
		b, err = eTagJSON.Marshal(i)
	}
	if err != nil {
		return err
	}

	return ServeWithETag(c, echo.MIMEApplicationJSONCharsetUTF8, b)
}

// ServeWithETag ETagを付与して返します。304を返せるときは304を返します。
func ServeWithETag(c echo.Context, contentType string, bytes []byte) error {
	sum := md5.Sum(bytes)
	c.Response().Header().Set(consts.HeaderETag, `"`+hex.EncodeToString(sum[:])+`"`)

	if done, err := CheckPreconditions(c); done {
		return err
	}
	return c.Blob(http.StatusOK, contentType, bytes)
}
