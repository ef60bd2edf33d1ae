package scene

import (
	"reflect"

	"github.com/plus3/ooftn-inspector/components"
)

var hiddenType = reflect.TypeFor[components.Hidden]()
