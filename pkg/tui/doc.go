// Package tui runs the sign-in form on a terminal.
//
// A Runner asks whether to switch between login and registration, prompts for
// every active field (replaying a change and a blur event for each answer so
// the field's own triggers decide when it validates), re-prompts while a
// field reports an error, and submits. Failed submits print the form's
// notices and offer a retry.
//
// Prompts go through a PromptDriver. NewSurveyDriver uses
// github.com/AlecAivazis/survey/v2; tests use a scripted driver.
package tui
