package web

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var ErrLogin = errors.New("wrong email address or password")

var loginTmpl = tmpl(`<h1>Login</h1>

	<form method="post" style="max-width: 20rem; margin: auto;">
		<div>
			<label>E-Mail</label>
			<input type="text" name="email" value="{{ .Email }}" required autofocus>
		</div>
		<div>
			<label>Password</label>
			<input type="password" name="password" required>
		</div>
		<div>
			<button type="submit" class="btn" name="login">Login</button>
		</div>
	</form>`)

type loginData struct {
	*Route
	Email string
}

func login(w http.ResponseWriter, req *http.Request, r *Route, params httprouter.Params) error {

	var email string

	if req.Method == http.MethodPost {

		email = req.PostFormValue("email")
		password := req.PostFormValue("password")

		err := r.Login(email, password)
		if err == nil {
			r.SeeOther("/")
			return nil
		}
		r.Danger(ErrLogin)
		// keep POST data for the email field
	}

	return loginTmpl.Execute(w, &loginData{
		Route: r,
		Email: email,
	})
}
