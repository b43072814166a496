package v1

import (
	"net/http"
	"strings"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/traPtitech/jazzicon/jazzicon"
	"github.com/traPtitech/jazzicon/router/consts"
	"github.com/traPtitech/jazzicon/router/extension"
	"github.com/traPtitech/jazzicon/router/extension/herror"
	"github.com/traPtitech/jazzicon/utils/validator"
)

// iconCacheControl 同じリクエストには常に同じアイコンを返すので長期間キャッシュさせる
const iconCacheControl = "public, max-age=31536000, immutable"

// IconRequest アイコン生成リクエスト
type IconRequest struct {
	Seed       *int64   `json:"seed" query:"seed"`
	Address    *string  `json:"address" query:"address"`
	Diameter   *float64 `json:"diameter" query:"diameter"`
	ShapeCount *int     `json:"shapeCount" query:"shapeCount"`
	Colors     []string `json:"colors"`
	// ColorList クエリパラメータのカンマ区切りカラーパレット
	ColorList string `json:"-" query:"colors"`

	limits Config
}

func (r IconRequest) Validate() error {
	return vd.ValidateStruct(&r,
		vd.Field(&r.Address, append([]vd.Rule{vd.When(r.Seed == nil, vd.Required.Error("seed or address is required"))}, validator.AddressRule...)...),
		vd.Field(&r.Diameter, validator.DiameterRule(r.limits.MaxDiameter)...),
		vd.Field(&r.ShapeCount, validator.ShapeCountRule(r.limits.MaxShapeCount)...),
		vd.Field(&r.Colors, validator.ColorsRule(r.limits.MaxColors)...),
	)
}

// Options jazzicon.Optionsに変換します
func (r IconRequest) Options() jazzicon.Options {
	return jazzicon.Options{
		Seed:       r.Seed,
		Address:    lo.FromPtr(r.Address),
		Diameter:   lo.FromPtr(r.Diameter),
		ShapeCount: lo.FromPtr(r.ShapeCount),
		Colors:     r.Colors,
	}
}

func (h *Handlers) newIconRequest() *IconRequest {
	return &IconRequest{limits: h.Config}
}

// GetIcon GET /icon
func (h *Handlers) GetIcon(c echo.Context) error {
	req := h.newIconRequest()
	if err := bindIconQuery(c, req); err != nil {
		return err
	}
	return h.serveIcon(c, req)
}

// GetIconByAddress GET /icon/:address
func (h *Handlers) GetIconByAddress(c echo.Context) error {
	req := h.newIconRequest()
	if err := bindIconQuery(c, req); err != nil {
		return err
	}
	// パスのアドレスが常に優先される
	req.Seed = nil
	req.Address = lo.ToPtr(c.Param(consts.ParamAddress))
	return h.serveIcon(c, req)
}

// PostIcon POST /icon
func (h *Handlers) PostIcon(c echo.Context) error {
	req := h.newIconRequest()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	spec, err := h.generate(c, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, spec)
}

func (h *Handlers) serveIcon(c echo.Context, req *IconRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	spec, err := h.generate(c, req)
	if err != nil {
		return err
	}
	c.Response().Header().Set(consts.HeaderCacheControl, iconCacheControl)
	return extension.ServeJSONWithETag(c, spec)
}

func (h *Handlers) generate(c echo.Context, req *IconRequest) (*jazzicon.IconSpec, error) {
	spec, err := h.Icon.Generate(c.Request().Context(), req.Options())
	if err != nil {
		if jazzicon.IsInvalidArgument(err) {
			return nil, herror.BadRequest(err)
		}
		return nil, herror.InternalServerError(err)
	}
	return spec, nil
}

// bindIconQuery クエリパラメータをIconRequestにバインドします
func bindIconQuery(c echo.Context, req *IconRequest) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if len(req.ColorList) > 0 {
		req.Colors = lo.Map(strings.Split(req.ColorList, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	}
	return nil
}
