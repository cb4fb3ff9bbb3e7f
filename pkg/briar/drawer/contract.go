package drawer

import (
	"github.com/briar-go/briar/pkg/briar"
	"github.com/briar-go/briar/pkg/briar/measure"
)

// Drawer renders a composition plan.
type Drawer interface {
	// AddPlan loads the plan of a composed pipeline.
	AddPlan(plan briar.Plan) error
	// AddMeasure overlays timing metrics on the loaded plan. Metrics are
	// matched to plan steps by name.
	AddMeasure(msr measure.Measure) error
	// Draw writes the rendering out.
	Draw() error
}
