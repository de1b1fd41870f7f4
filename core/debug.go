package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// InstallDebugMessenger registers the diagnostic callback through the
// instance's resolved hook pair. An absent hook means the instance was
// created without the debug extension.
func InstallDebugMessenger(instance Instance) (DebugMessenger, error) {
	hooks := instance.DebugHooks()
	if hooks.Create == nil {
		return nil, fmt.Errorf("%w: debug extension not present", ErrDebugMessengerSetup)
	}
	messenger, err := hooks.Create(reportDiagnostic)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDebugMessengerSetup, err)
	}
	return messenger, nil
}

// RemoveDebugMessenger unregisters a previously installed callback.
// Safe to call with a nil messenger, in which case nothing happens.
func RemoveDebugMessenger(instance Instance, messenger DebugMessenger) {
	if messenger == nil {
		return
	}
	if hooks := instance.DebugHooks(); hooks.Destroy != nil {
		hooks.Destroy(messenger)
	}
}

// reportDiagnostic runs on a thread of the driver's choosing. It only
// writes the message to the sink and returns.
func reportDiagnostic(severity, message string) {
	log.WithField("severity", severity).Warn("validation: " + message)
}
