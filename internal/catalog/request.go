package catalog

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const maxBodyBytes = 1 << 20

var (
	errBadBody       = errors.New("invalid request body")
	errMissingFields = errors.New("missing required fields")
	errInvalidFields = errors.New("invalid field values")
)

type createReq struct {
	Name        *string  `json:"name" validate:"required,notblank"`
	Category    *string  `json:"category" validate:"required,notblank"`
	Description *string  `json:"description" validate:"required,notblank"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int64   `json:"stock" validate:"required,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}

func (r createReq) toNewProduct() NewProduct {
	in := NewProduct{
		Name:        *r.Name,
		Category:    *r.Category,
		Description: *r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Image:       PlaceholderImage,
	}
	if r.Rating != nil {
		in.Rating = *r.Rating
	}
	if r.Image != nil {
		in.Image = *r.Image
	}
	return in
}

type patchReq struct {
	Name        *string  `json:"name" validate:"omitempty,notblank"`
	Category    *string  `json:"category" validate:"omitempty,notblank"`
	Description *string  `json:"description" validate:"omitempty,notblank"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int64   `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Image       *string  `json:"image" validate:"omitempty,url"`
}

func (r patchReq) toPatch() Patch {
	return Patch{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Rating:      r.Rating,
		Image:       r.Image,
	}
}

type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &requestValidator{v: v}
}

// create returns errMissingFields when a required field is absent or blank,
// errInvalidFields when a present field is out of range.
func (rv *requestValidator) create(req *createReq) error {
	normalize(req.Name, req.Category, req.Description)
	normalizeImage(&req.Image)
	return classify(rv.v.Struct(req), true)
}

func (rv *requestValidator) patch(req *patchReq) error {
	normalize(req.Name, req.Category, req.Description)
	normalizeImage(&req.Image)
	return classify(rv.v.Struct(req), false)
}

func classify(err error, blankIsMissing bool) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			return errMissingFields
		case "notblank":
			if blankIsMissing {
				return errMissingFields
			}
		}
	}
	return errInvalidFields
}

func normalize(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// normalizeImage maps a blank image to the placeholder.
func normalizeImage(image **string) {
	if *image == nil {
		return
	}
	if v := strings.TrimSpace(**image); v != "" {
		*image = &v
		return
	}
	v := PlaceholderImage
	*image = &v
}

// decodeJSON decodes a single JSON object strictly. An empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(errBadBody, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.Join(errBadBody, errors.New("extra data after json object"))
	}
	return nil
}
