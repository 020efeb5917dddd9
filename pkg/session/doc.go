// Package session keeps the authentication token obtained at sign-in so that
// it is applied to every later API request and survives restarts.
//
// A Store persists tokens by key; MemoryStore keeps them in process memory,
// RedisStore in Redis with native expiry. A Keeper combines a Store with the
// API client's authorization:
//
//	keeper := session.NewKeeper(session.NewRedisStore(rdb, ""), client,
//	    session.WithKey(client.BaseURL()),
//	    session.WithTTL(cfg.SessionTTL),
//	)
//	if ok, err := keeper.Restore(ctx); err == nil && ok {
//	    // already signed in
//	}
//
// Keeper implements authapi.TokenSink, so authapi.Service calls Persist after
// a successful login or registration and Forget on logout.
package session
