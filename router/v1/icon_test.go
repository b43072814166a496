package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/router/consts"
	"github.com/traPtitech/jazzicon/service/icon/mock_icon"
)

var examplePalette = "#d81b60,#8e24aa,#3949ab,#00897b"

type expectedShape struct {
	fill       string
	rotation   float64
	translateX float64
	translateY float64
	size       float64
}

var exampleShapes = []expectedShape{
	{"#8e24aa", 248.8086, -7.5278, -8.5283, 100},
	{"#00897b", 285.8182, -19.3479, 0.4998, 75},
	{"#d81b60", 55.9264, 5.3197, -24.9371, 50},
	{"#8e24aa", 113.6206, 37.5377, -8.1905, 25},
}

func TestHandlers_GetIcon(t *testing.T) {
	t.Parallel()

	path := "/api/v1/icon"

	t.Run("example", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		res := e.GET(path).
			WithQuery("seed", 12345).
			WithQuery("colors", examplePalette).
			Expect().
			Status(http.StatusOK)
		res.Header(consts.HeaderETag).NotEmpty()
		res.Header(consts.HeaderCacheControl).IsEqual(iconCacheControl)

		obj := res.JSON().Object()
		obj.Value("diameter").Number().IsEqual(100)
		obj.Value("background").String().IsEqual("#3949ab")
		shapes := obj.Value("shapes").Array()
		shapes.Length().IsEqual(len(exampleShapes))
		for i, want := range exampleShapes {
			s := shapes.Value(i).Object()
			s.Value("kind").String().IsEqual(jazzicon.ShapeKindRect)
			s.Value("fill").String().IsEqual(want.fill)
			s.Value("rotation").Number().InDelta(want.rotation, 1e-9)
			s.Value("translateX").Number().InDelta(want.translateX, 1e-9)
			s.Value("translateY").Number().InDelta(want.translateY, 1e-9)
			s.Value("size").Number().InDelta(want.size, 1e-9)
		}
	})

	t.Run("full precision", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		want, err := jazzicon.Generate(12345, jazzicon.DefaultDiameter, 3, jazzicon.DefaultColors())
		require.NoError(t, err)

		res := e.GET(path).
			WithQuery("seed", 12345).
			WithQuery("shapeCount", 3).
			Expect().
			Status(http.StatusOK)
		res.Body().Contains(fmt.Sprintf(`"scale":%v`, want.Shapes[1].Scale))
		shapes := res.JSON().Object().Value("shapes").Array()
		for i, s := range want.Shapes {
			shapes.Value(i).Object().Value("scale").Number().IsEqual(s.Scale)
			shapes.Value(i).Object().Value("size").Number().IsEqual(s.Size)
		}
		shapes.Value(1).Object().Value("scale").Number().IsEqual(2.0 / 3.0)
	})

	t.Run("colors with spaces", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		spaced := e.GET(path).
			WithQuery("seed", 12345).
			WithQuery("colors", "#d81b60, #8e24aa , #3949ab,#00897b").
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		plain := e.GET(path).
			WithQuery("seed", 12345).
			WithQuery("colors", examplePalette).
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		require.Equal(t, plain, spaced)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		obj := e.GET(path).
			WithQuery("seed", 1).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("diameter").Number().IsEqual(jazzicon.DefaultDiameter)
		obj.Value("shapes").Array().Length().IsEqual(jazzicon.DefaultShapeCount)
	})

	t.Run("seed takes precedence over address", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		withSeed := e.GET(path).
			WithQuery("seed", 42).
			WithQuery("address", "0x742d35Cc6634C0532925a3b8D4C9db96590e4CAF").
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		seedOnly := e.GET(path).
			WithQuery("seed", 42).
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		require.Equal(t, seedOnly, withSeed)
	})

	t.Run("not modified", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		eTag := e.GET(path).
			WithQuery("seed", 7).
			Expect().
			Status(http.StatusOK).
			Header(consts.HeaderETag).
			NotEmpty().
			Raw()

		e.GET(path).
			WithQuery("seed", 7).
			WithHeader(consts.HeaderIfNoneMatch, eTag).
			Expect().
			Status(http.StatusNotModified)
	})

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		cases := []map[string]interface{}{
			{},
			{"seed": "abc"},
			{"seed": 1, "diameter": "big"},
			{"seed": 1, "diameter": 0},
			{"seed": 1, "diameter": -10},
			{"seed": 1, "diameter": 5000},
			{"seed": 1, "shapeCount": "x"},
			{"seed": 1, "shapeCount": 0},
			{"seed": 1, "shapeCount": 65},
			{"seed": 1, "colors": "red"},
			{"seed": 1, "colors": "#fff,,#000"},
		}
		for _, q := range cases {
			req := e.GET(path)
			for k, v := range q {
				req = req.WithQuery(k, v)
			}
			req.Expect().Status(http.StatusBadRequest)
		}
	})
}

func TestHandlers_GetIconByAddress(t *testing.T) {
	t.Parallel()

	address := "0x742d35Cc6634C0532925a3b8D4C9db96590e4CAF"

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		want, err := jazzicon.Options{Address: address}.Generate()
		require.NoError(t, err)

		obj := e.GET("/api/v1/icon/{address}", address).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("background").String().IsEqual(want.Background)
		shapes := obj.Value("shapes").Array()
		shapes.Length().IsEqual(len(want.Shapes))
		for i, s := range want.Shapes {
			shapes.Value(i).Object().Value("fill").String().IsEqual(s.Fill)
			shapes.Value(i).Object().Value("rotation").Number().InDelta(s.Rotation, 1e-9)
		}
	})

	t.Run("address overrides seed query", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		byPath := e.GET("/api/v1/icon/{address}", address).
			WithQuery("seed", 1).
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		byQuery := e.GET("/api/v1/icon").
			WithQuery("address", address).
			Expect().
			Status(http.StatusOK).
			JSON().
			Raw()
		require.Equal(t, byQuery, byPath)
	})

	t.Run("too long address", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		long := make([]byte, 300)
		for i := range long {
			long[i] = 'a'
		}
		e.GET("/api/v1/icon/{address}", string(long)).
			Expect().
			Status(http.StatusBadRequest)
	})
}

func TestHandlers_PostIcon(t *testing.T) {
	t.Parallel()

	path := "/api/v1/icon"

	t.Run("example", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		obj := e.POST(path).
			WithJSON(map[string]interface{}{
				"seed":   12345,
				"colors": []string{"#d81b60", "#8e24aa", "#3949ab", "#00897b"},
			}).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("background").String().IsEqual("#3949ab")
		shapes := obj.Value("shapes").Array()
		for i, want := range exampleShapes {
			shapes.Value(i).Object().Value("fill").String().IsEqual(want.fill)
			shapes.Value(i).Object().Value("size").Number().InDelta(want.size, 1e-9)
		}
	})

	t.Run("full precision", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		want, err := jazzicon.Generate(12345, jazzicon.DefaultDiameter, 3, jazzicon.DefaultColors())
		require.NoError(t, err)

		res := e.POST(path).
			WithJSON(map[string]interface{}{
				"seed":       12345,
				"shapeCount": 3,
			}).
			Expect().
			Status(http.StatusOK)
		res.Body().Contains(fmt.Sprintf(`"scale":%v`, want.Shapes[1].Scale))
		shapes := res.JSON().Object().Value("shapes").Array()
		for i, s := range want.Shapes {
			shapes.Value(i).Object().Value("scale").Number().IsEqual(s.Scale)
			shapes.Value(i).Object().Value("size").Number().IsEqual(s.Size)
		}
	})

	t.Run("custom size", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		obj := e.POST(path).
			WithJSON(map[string]interface{}{
				"address":    "alice@example.com",
				"diameter":   64,
				"shapeCount": 8,
			}).
			Expect().
			Status(http.StatusOK).
			JSON().
			Object()
		obj.Value("diameter").Number().IsEqual(64)
		obj.Value("shapes").Array().Length().IsEqual(8)
	})

	t.Run("bad request", func(t *testing.T) {
		t.Parallel()
		e := makeExp(t, setup(t, testConfig))

		bodies := []map[string]interface{}{
			{},
			{"address": ""},
			{"seed": 1, "colors": []string{}},
			{"seed": 1, "colors": []string{"#zzzzzz"}},
			{"seed": 1, "diameter": 0},
			{"seed": 1, "shapeCount": -1},
		}
		for _, body := range bodies {
			e.POST(path).
				WithJSON(body).
				Expect().
				Status(http.StatusBadRequest)
		}
		e.POST(path).
			WithText("{").
			WithHeader("Content-Type", "application/json").
			Expect().
			Status(http.StatusBadRequest)
	})
}

func TestHandlers_PostIcon_BodyLimit(t *testing.T) {
	t.Parallel()

	config := testConfig
	config.MaxRequestBodyKB = 1
	e := makeExp(t, setup(t, config))

	e.POST("/api/v1/icon").
		WithJSON(map[string]interface{}{"seed": 1, "colors": []string{"#000000", "#ffffff"}}).
		Expect().
		Status(http.StatusOK)

	colors := make([]string, 200)
	for i := range colors {
		colors[i] = "#000000"
	}
	e.POST("/api/v1/icon").
		WithJSON(map[string]interface{}{"seed": 1, "colors": colors}).
		Expect().
		Status(http.StatusRequestEntityTooLarge)
}

func TestHandlers_GenerateError(t *testing.T) {
	t.Parallel()

	t.Run("invalid argument", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := mock_icon.NewMockService(ctrl)
		e := makeExp(t, setupWithService(t, testConfig, svc))

		svc.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: palette must not be empty", jazzicon.ErrInvalidArgument)).
			Times(1)

		e.GET("/api/v1/icon").
			WithQuery("seed", 1).
			Expect().
			Status(http.StatusBadRequest)
	})

	t.Run("service failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := mock_icon.NewMockService(ctrl)
		e := makeExp(t, setupWithService(t, testConfig, svc))

		svc.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("mock error")).
			Times(2)

		e.GET("/api/v1/icon").
			WithQuery("seed", 1).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("message", http.StatusText(http.StatusInternalServerError))
		e.POST("/api/v1/icon").
			WithJSON(map[string]interface{}{"seed": 1}).
			Expect().
			Status(http.StatusInternalServerError)
	})
}

func TestHandlers_RateLimit(t *testing.T) {
	t.Parallel()

	config := testConfig
	config.RateLimit = rate.Every(time.Hour)
	config.RateBurst = 1
	e := makeExp(t, setup(t, config))

	e.GET("/api/v1/icon").
		WithQuery("seed", 1).
		Expect().
		Status(http.StatusOK)
	e.GET("/api/v1/icon").
		WithQuery("seed", 1).
		Expect().
		Status(http.StatusTooManyRequests)
	// レート制限はアイコン生成APIのみ
	e.GET("/api/v1/version").
		Expect().
		Status(http.StatusOK)
}
