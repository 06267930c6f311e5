// exposure.go defines how extensions make operations callable from other
// subsystems: the configuration surface, the template surface, and helper
// bundles.
//
// Design: exposure is an explicit declaration of (name, callable) pairs, not
// reflection over method lists. The instance supplies the name and a bound
// callable; the host records them in its exposure table at activation. Names
// are unique within each surface, and a later activation re-claiming a name
// fails rather than silently shadowing the earlier owner.

package extension

// Exposure names one callable an instance offers to a surface. Fn is
// typically a method value or closure bound to the instance, so config and
// template operations run with access to the instance's state.
type Exposure struct {
	Name string
	Fn   any
}

// ConfigExposer instances offer operations to the configuration-evaluation
// surface. Exposed names become callable from site configuration after the
// owning extension is activated.
type ConfigExposer interface {
	ConfigExposures() []Exposure
}

// TemplateExposer instances offer operations to the rendering surface for
// every page rendered after activation.
type TemplateExposer interface {
	TemplateExposures() []Exposure
}

// HelperBundle is a named group of free functions merged into the template
// evaluation context as a read-only namespace. Unlike template exposures,
// bundle functions run without access to the owning instance's state:
// capture plain values at construction, not the instance itself.
type HelperBundle struct {
	Name  string
	Funcs map[string]any
}

// HelperProvider instances contribute a helper bundle to the template
// evaluation context.
type HelperProvider interface {
	Helpers() HelperBundle
}
