package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore falls back to project detection from the environment when
// PROJECTID is unset, which is the case on Cloud Run and the emulator.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return firestore.NewClient(ctx, projectID)
}
