package usecase

// ResolutionObserver recibe el resultado de cada resolución de categoría (métricas).
type ResolutionObserver interface {
	ObserveResolution(outcome string)
}

// ModuleCheckObserver recibe cada decisión del gate de módulos (métricas).
type ModuleCheckObserver interface {
	ObserveModuleCheck(module string, allowed bool)
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(string)       {}
func (nopObserver) ObserveModuleCheck(string, bool) {}
