// internal/event/types.go
package event

const (
	AssetsReady     EventType = "AssetsReady"     // enough images have loaded
	BalloonLaunched EventType = "BalloonLaunched" // Data: component.FlyingBalloon
	BalloonPopped   EventType = "BalloonPopped"   // Data: component.PopEffect
)
