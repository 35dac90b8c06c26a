package source

import (
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// NewConfiguration returns the pdfcpu configuration used for reading and
// writing. pdfcpu's user config directory is never touched.
func NewConfiguration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	// Classic cross-reference tables keep the output readable by older tools.
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false
	return conf
}
