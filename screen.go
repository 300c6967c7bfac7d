package logo

import "time"

type Screen interface {
	Update(deltaTime time.Duration)
	Draw()
	BeforeScreenTransition()
	Free()
}
