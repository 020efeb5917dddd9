// Package form implements the controller of the login / registration screen.
//
// A Controller owns one field.Field per input (name, email, password by
// default; the name input only exists in register mode), forwards change and
// blur events to them, and drives submission:
//
//  1. every active field is validated concurrently and Submit waits for all
//     runs to settle before reading any error state;
//  2. if any field reports an error, Submit returns ErrInvalidForm wrapping
//     validator.ValidationErrors and no request is made;
//  3. otherwise the loading flag is raised and Login or Register is called
//     with the field values (the name only in register mode);
//  4. a failed call shows its message as a dismissible error notice.
//
// The loading flag is lowered on every path. ToggleMode switches between
// login and register and clears all values and validation state.
//
//	ctrl, err := form.New(authService, form.WithMessages(catalog.Login(lang)))
//	if err != nil {
//	    return err
//	}
//	ctrl.SetValue(ctx, form.FieldEmail, "user@example.com")
//	ctrl.SetValue(ctx, form.FieldPassword, "Abcdef1!")
//	if err := ctrl.Submit(ctx); err != nil {
//	    notices, _ := ctrl.Notices(ctx)
//	    // render notices or ctrl.Errors()
//	}
package form
