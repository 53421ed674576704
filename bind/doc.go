// Package bind turns the raw mapping produced by strata resolution into a
// typed, validated configuration struct.
//
// Binding is a strict two-phase step kept apart from the resolution engine:
// the engine only ever sees untyped trees, and this package only ever sees
// the final merged mapping. Field mapping uses `config` struct tags via
// mapstructure; validation uses go-playground/validator `validate` tags.
// Defaults belong here too: populate the target struct before binding and
// absent keys leave those fields untouched.
//
//	type Config struct {
//	    Server struct {
//	        Port int    `config:"port" validate:"min=1,max=65535"`
//	        Host string `config:"host" validate:"required"`
//	    } `config:"server"`
//	}
//
//	cfg := Defaults()
//	if err := bind.Bind(raw, &cfg); err != nil {
//	    var verr *bind.ValidationError
//	    if errors.As(err, &verr) {
//	        for _, f := range verr.Fields {
//	            fmt.Println(f.Path, f.Message)
//	        }
//	    }
//	}
package bind
