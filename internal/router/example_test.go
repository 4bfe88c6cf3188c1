package router_test

import (
	"fmt"

	"github.com/ytget/navdemo/internal/router"
	"github.com/ytget/navdemo/internal/session"
)

// Example demonstrates forward navigation and popping back to a resident view.
func Example() {
	r := router.New(session.New())

	builds := 0
	page := func(title string) router.Builder {
		return func(nav router.Navigator, store *session.Store) router.View {
			builds++
			return router.View{Title: title}
		}
	}

	r.Register(router.RouteLogin, page("Login")).
		Register(router.RouteHome, page("Home")).
		Register(router.RouteForm, page("Form")).
		OnRender(func(v router.View) {
			fmt.Printf("showing %s (%s)\n", v.Title, v.Route)
		})

	_ = r.Start("")
	r.Navigate(router.RouteHome)
	r.Navigate(router.RouteForm)
	r.Pop()

	fmt.Println("stack:", r.Routes())
	fmt.Println("builds:", builds)

	// Output:
	// showing Login (/login)
	// showing Home (/home)
	// showing Form (/form)
	// showing Home (/home)
	// stack: [/login /home]
	// builds: 3
}

// Example_popToLogin shows that login is rebuilt rather than resumed.
func Example_popToLogin() {
	r := router.New(session.New())

	logins := 0
	r.Register(router.RouteLogin, func(router.Navigator, *session.Store) router.View {
		logins++
		return router.View{Title: "Login"}
	})
	r.Register(router.RouteHome, func(router.Navigator, *session.Store) router.View {
		return router.View{Title: "Home", ShowBack: true}
	})

	_ = r.Start("/")
	r.Navigate(router.RouteHome)
	r.Pop()
	r.Pop()

	fmt.Println("stack:", r.Routes())
	fmt.Println("login builds:", logins)

	// Output:
	// stack: [/login]
	// login builds: 2
}
