package service

import (
	"context"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/utils"
)

// checkUserScope rejects requests whose target user differs from the
// authenticated user recorded in the context under [utils.UserIDCtxKey].
// A context without a user ID passes: registration and login run before
// any user is established.
func checkUserScope(ctx context.Context, userID int64) error {
	ctxUserID, ok := utils.GetUserIDFromContext(ctx)
	if ok && ctxUserID != userID {
		return ErrWrongUser
	}
	return nil
}
