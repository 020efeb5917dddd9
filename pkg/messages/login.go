package messages

// Login holds the strings of the login / registration screen in one language.
type Login struct {
	Title            string
	RegisterTitle    string
	Submit           string
	RegisterSubmit   string
	HasAccount       string
	SwitchToRegister string
	SwitchToLogin    string
	NameLabel        string
	EmailLabel       string
	PasswordLabel    string
	NameNotEmpty     string
	EmailNotEmpty    string
	EmailInvalid     string
	PasswordNotEmpty string
	PasswordInvalid  string
	Retry            string
}

// Login returns the login screen strings for lang.
func (c *Catalog) Login(lang string) Login {
	t := func(key string) string { return c.T(lang, "login."+key) }
	return Login{
		Title:            t("title"),
		RegisterTitle:    t("register_title"),
		Submit:           t("submit"),
		RegisterSubmit:   t("register_submit"),
		HasAccount:       t("has_account"),
		SwitchToRegister: t("switch_to_register"),
		SwitchToLogin:    t("switch_to_login"),
		NameLabel:        t("name_label"),
		EmailLabel:       t("email_label"),
		PasswordLabel:    t("password_label"),
		NameNotEmpty:     t("name_not_empty"),
		EmailNotEmpty:    t("email_not_empty"),
		EmailInvalid:     t("email_invalid"),
		PasswordNotEmpty: t("password_not_empty"),
		PasswordInvalid:  t("password_invalid"),
		Retry:            t("retry"),
	}
}

// DefaultLogin returns the English login screen strings of the default catalogue.
func DefaultLogin() Login {
	return Default().Login(DefaultLanguage)
}
