// Package notice shows short-lived, dismissible messages such as a failed
// sign-in.
//
// A Center stores notices in a Storage and hands each new one to a Deliverer.
// Notices expire after DefaultTTL unless WithTTL says otherwise; expired
// notices are dropped the next time Visible is called.
//
//	center := notice.NewCenter(notice.NewMemoryStorage())
//	center.Error(ctx, "Invalid credentials")
//	visible, _ := center.Visible(ctx)
package notice
