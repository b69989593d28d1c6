package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/me/shopadmin/pkg/model"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return "$" + humanize.CommafWithDigits(v, 2)
	},
	"percent": func(v float64) string {
		return humanize.CommafWithDigits(v, 1) + "%"
	},
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"dateInput": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	// API timestamps arrive as strings; show them as relative age when
	// they parse and verbatim when they do not.
	"apiTime": func(s string) string {
		if s == "" {
			return "-"
		}
		if t := model.ParseAPIDate(s); !t.IsZero() {
			return humanize.Time(t)
		}
		return s
	},
	"badgeClass": func(s model.Status) string {
		switch s.BadgeColor() {
		case "yellow":
			return "bg-yellow-100 text-yellow-800"
		case "blue":
			return "bg-blue-100 text-blue-800"
		case "indigo":
			return "bg-indigo-100 text-indigo-800"
		case "green":
			return "bg-green-100 text-green-800"
		case "red":
			return "bg-red-100 text-red-800"
		case "orange":
			return "bg-orange-100 text-orange-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"add": func(a, b int) int {
		return a + b
	},
	"sub": func(a, b int) int {
		return a - b
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"join": func(parts []string, sep string) string {
		return strings.Join(parts, sep)
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	_, err = tmpl.New("content").Parse(content)
	if err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			_, err = tmpl.New(filepath.Base(compName)).Parse(compContent)
			if err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content. In a production app, these would be
// loaded from files or generated by templ.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://unpkg.com/htmx.org@1.9.10"></script>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        .htmx-indicator { display: none; }
        .htmx-request .htmx-indicator { display: inline-block; }
    </style>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                        ShopAdmin
                    </a>
                    <div class="hidden lg:ml-6 lg:flex lg:space-x-4">
                        <a href="/products" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Products</a>
                        <a href="/categories" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Categories</a>
                        <a href="/orders" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Orders</a>
                        <a href="/transactions" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Transactions</a>
                        <a href="/shipping" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Shipping</a>
                        <a href="/discounts" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Discounts</a>
                        <a href="/plans" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Plans</a>
                        <a href="/members" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Members</a>
                        <a href="/toys" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Toys</a>
                        <a href="/courses" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Courses</a>
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.Session.Name}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Logout</a>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	// Search box plus pagination links. Expects the standard list
	// payload: Query, Page, TotalPages, Total.
	"components/searchbar": `<form method="GET" class="mb-4 flex items-center space-x-2">
    <input type="text" name="q" value="{{.Query}}" placeholder="Search..."
           class="block w-64 px-3 py-2 text-sm border border-gray-300 rounded-md focus:ring-indigo-500 focus:border-indigo-500">
    <button type="submit" class="px-3 py-2 text-sm bg-gray-100 text-gray-700 rounded-md hover:bg-gray-200">Search</button>
    {{if .Query}}
    <a href="?" class="px-2 py-2 text-sm text-gray-500 hover:text-gray-700">Clear</a>
    {{end}}
    <span class="ml-auto text-sm text-gray-500">{{.Total}} results</span>
</form>`,

	"components/pagination": `{{if gt .TotalPages 1}}
<div class="mt-4 flex justify-between items-center">
    {{if gt .Page 1}}
    <a href="?page={{sub .Page 1}}{{with .Query}}&amp;q={{urlquery .}}{{end}}"
       class="inline-flex items-center px-4 py-2 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
        Previous
    </a>
    {{else}}
    <span></span>
    {{end}}
    <span class="text-sm text-gray-500">Page {{.Page}} of {{.TotalPages}}</span>
    {{if lt .Page .TotalPages}}
    <a href="?page={{add .Page 1}}{{with .Query}}&amp;q={{urlquery .}}{{end}}"
       class="inline-flex items-center px-4 py-2 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
        Next
    </a>
    {{else}}
    <span></span>
    {{end}}
</div>
{{end}}`,

	"components/flash": `{{if .Error}}
<div class="rounded-md bg-red-50 p-4 mb-4">
    <div class="text-sm text-red-700">{{.Error}}</div>
</div>
{{end}}`,

	"login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center bg-gray-50 py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">
                ShopAdmin
            </h2>
            <p class="mt-2 text-center text-sm text-gray-600">
                Sign in with your admin account
            </p>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <div class="rounded-md shadow-sm -space-y-px">
                <div>
                    <label for="email" class="sr-only">Email</label>
                    <input id="email" name="email" type="email" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-t-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Email address">
                </div>
                <div>
                    <label for="password" class="sr-only">Password</label>
                    <input id="password" name="password" type="password" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-b-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Password">
                </div>
            </div>
            <div>
                <button type="submit"
                        class="group relative w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-indigo-500">
                    Sign in
                </button>
            </div>
        </form>
    </div>
</div>
{{end}}`,

	"home": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Welcome back, {{.Session.Name}} &middot; up {{.Uptime}}</p>
    </div>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-3 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Orders</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.OrderCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Products</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.ProductCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Members</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.MemberCount}}</dd>
        </div>
    </div>

    <div class="bg-white shadow rounded-lg p-4 mb-8">
        <h3 class="text-sm font-medium text-gray-700 mb-3">Orders by status</h3>
        <div class="flex flex-wrap gap-2">
            {{range .Statuses}}
            <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .}}">
                {{.}}: {{index $.Stats .String}}
            </span>
            {{end}}
        </div>
    </div>

    <div class="bg-white shadow rounded-lg">
        <div class="px-4 py-5 border-b border-gray-200 sm:px-6">
            <div class="flex justify-between items-center">
                <h3 class="text-lg leading-6 font-medium text-gray-900">Recent Orders</h3>
                <a href="/orders" class="text-sm text-indigo-600 hover:text-indigo-500">View all</a>
            </div>
        </div>
        <ul class="divide-y divide-gray-200">
            {{range .RecentOrders}}
            <li>
                <a href="/orders/{{.ID}}" class="block hover:bg-gray-50 px-4 py-4">
                    <div class="flex items-center justify-between">
                        <p class="text-sm font-medium text-indigo-600 truncate">{{.CustomerName}}</p>
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </div>
                    <p class="mt-1 text-xs text-gray-500">{{money .Total}} &middot; {{apiTime .CreatedAt}}</p>
                </a>
            </li>
            {{else}}
            <li class="px-4 py-4 text-sm text-gray-500">No orders yet</li>
            {{end}}
        </ul>
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center">
    <div class="text-center">
        <h1 class="text-4xl font-bold text-gray-900 mb-4">Error</h1>
        <p class="text-gray-600 mb-2">{{.Message}}</p>
        {{if .Detail}}<p class="text-sm text-gray-500 mb-8">{{.Detail}}</p>{{end}}
        <a href="/" class="text-indigo-600 hover:text-indigo-500">Return to Dashboard</a>
    </div>
</div>
{{end}}`,

	"products/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Products</h1>
        <a href="/products/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-indigo-600 hover:bg-indigo-700">
            Add Product
        </a>
    </div>

    {{template "flash" .}}
    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Category</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Price</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Stock</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="product-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap">
                        <div class="flex items-center">
                            {{if .ImageURL}}<img src="{{.ImageURL}}" alt="" class="h-8 w-8 rounded object-cover mr-3">{{end}}
                            <span class="text-sm font-medium text-gray-900">{{.Name}}</span>
                        </div>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Category}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Price}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">
                        <form hx-post="/products/{{.ID}}/stock" class="flex items-center space-x-1">
                            <input type="number" name="stock" value="{{.Stock}}" min="0"
                                   class="w-16 px-1 py-0.5 text-sm border border-gray-300 rounded">
                            <button type="submit" class="text-xs text-indigo-600 hover:text-indigo-500">Set</button>
                        </form>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm space-x-2">
                        <a href="/products/{{.ID}}/edit" class="text-indigo-600 hover:text-indigo-500">Edit</a>
                        <button hx-delete="/products/{{.ID}}"
                                hx-target="#product-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this product?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No products found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"products/form": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">{{if .Product}}Edit Product{{else}}Add Product{{end}}</h1>

    {{template "flash" .}}

    <form action="{{if .Product}}/products/{{.Product.ID}}/edit{{else}}/products/new{{end}}" method="POST" class="bg-white shadow sm:rounded-lg">
        <div class="px-4 py-5 sm:p-6 space-y-6">
            <div>
                <label for="name" class="block text-sm font-medium text-gray-700">Name</label>
                <input type="text" name="name" id="name" required value="{{with .Product}}{{.Name}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
            <div>
                <label for="description" class="block text-sm font-medium text-gray-700">Description</label>
                <textarea name="description" id="description" rows="3"
                          class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">{{with .Product}}{{.Description}}{{end}}</textarea>
            </div>
            <div>
                <label for="category" class="block text-sm font-medium text-gray-700">Category</label>
                <input type="text" name="category" id="category" value="{{with .Product}}{{.Category}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
            <div class="grid grid-cols-2 gap-4">
                <div>
                    <label for="price" class="block text-sm font-medium text-gray-700">Price</label>
                    <input type="number" step="0.01" min="0" name="price" id="price" required value="{{with .Product}}{{.Price}}{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
                <div>
                    <label for="stock" class="block text-sm font-medium text-gray-700">Stock</label>
                    <input type="number" min="0" name="stock" id="stock" value="{{with .Product}}{{.Stock}}{{else}}0{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
            </div>
            <div>
                <label for="image" class="block text-sm font-medium text-gray-700">Image URL</label>
                <input type="url" name="image" id="image" value="{{with .Product}}{{.ImageURL}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
        </div>
        <div class="px-4 py-3 bg-gray-50 text-right sm:px-6">
            <a href="/products" class="inline-flex justify-center py-2 px-4 border border-gray-300 shadow-sm text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50 mr-3">Cancel</a>
            <button type="submit" class="inline-flex justify-center py-2 px-4 border border-transparent shadow-sm text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"categories/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Categories</h1>

    {{template "flash" .}}

    <form action="/categories/new" method="POST" class="bg-white shadow rounded-lg p-4 mb-6 flex items-end space-x-3">
        <div>
            <label for="name" class="block text-xs font-medium text-gray-500 mb-1">Name</label>
            <input type="text" name="name" id="name" required
                   class="block w-48 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="slug" class="block text-xs font-medium text-gray-500 mb-1">Slug</label>
            <input type="text" name="slug" id="slug"
                   class="block w-48 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <button type="submit" class="px-3 py-1.5 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Add</button>
    </form>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Slug</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Products</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="category-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500 font-mono">{{.Slug}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.ProductCount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm">
                        <button hx-delete="/categories/{{.ID}}"
                                hx-target="#category-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this category?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="4" class="px-6 py-8 text-center text-sm text-gray-500">No categories found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"orders/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Orders</h1>
        <a href="/orders/export{{with .Query}}?q={{urlquery .}}{{end}}"
           class="inline-flex items-center px-3 py-2 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
            Export CSV
        </a>
    </div>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Order</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Customer</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Total</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Placed</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="order-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-mono">
                        <a href="/orders/{{.ID}}" class="text-indigo-600 hover:text-indigo-500">{{truncate .ID 12}}</a>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <div class="text-sm font-medium text-gray-900">{{.CustomerName}}</div>
                        <div class="text-xs text-gray-500">{{.Email}}</div>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Total}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <form hx-post="/orders/{{.ID}}/status" class="flex items-center space-x-1">
                            <select name="status" class="text-xs border border-gray-300 rounded px-1 py-0.5">
                                {{$current := .Status}}
                                {{range $.Statuses}}
                                <option value="{{.}}" {{if eq . $current}}selected{{end}}>{{.}}</option>
                                {{end}}
                            </select>
                            <button type="submit" class="text-xs text-indigo-600 hover:text-indigo-500">Set</button>
                        </form>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{apiTime .CreatedAt}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm">
                        <button hx-delete="/orders/{{.ID}}"
                                hx-target="#order-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this order?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No orders found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"orders/detail": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-3xl">
    <div class="mb-6 flex items-center justify-between">
        <div>
            <h1 class="text-2xl font-semibold text-gray-900">Order</h1>
            <p class="mt-1 text-sm text-gray-500 font-mono">{{.Order.ID}}</p>
        </div>
        <span class="inline-flex items-center px-3 py-1 rounded-full text-sm font-medium {{badgeClass .Order.Status}}">{{.Order.Status}}</span>
    </div>

    <div class="bg-white shadow overflow-hidden sm:rounded-lg">
        <div class="border-t border-gray-200">
            <dl>
                <div class="bg-gray-50 px-4 py-5 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Customer</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Order.CustomerName}}</dd>
                </div>
                <div class="bg-white px-4 py-5 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Email</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{.Order.Email}}</dd>
                </div>
                <div class="bg-gray-50 px-4 py-5 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Total</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{money .Order.Total}} ({{.Order.ItemCount}} items)</dd>
                </div>
                <div class="bg-white px-4 py-5 sm:grid sm:grid-cols-3 sm:gap-4 sm:px-6">
                    <dt class="text-sm font-medium text-gray-500">Placed</dt>
                    <dd class="mt-1 text-sm text-gray-900 sm:mt-0 sm:col-span-2">{{apiTime .Order.CreatedAt}}</dd>
                </div>
            </dl>
        </div>
    </div>

    <div class="mt-6 bg-white shadow rounded-lg p-4">
        <h3 class="text-sm font-medium text-gray-700 mb-3">Update status</h3>
        <form hx-post="/orders/{{.Order.ID}}/status" class="flex items-center space-x-2">
            <select name="status" class="text-sm border border-gray-300 rounded px-2 py-1">
                {{$current := .Order.Status}}
                {{range .Statuses}}
                <option value="{{.}}" {{if eq . $current}}selected{{end}}>{{.}}</option>
                {{end}}
            </select>
            <button type="submit" class="px-3 py-1.5 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Update</button>
        </form>
    </div>

    <div class="mt-6">
        <a href="/orders" class="text-sm text-indigo-600 hover:text-indigo-500">&larr; Back to orders</a>
    </div>
</div>
{{end}}`,

	"transactions/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Transactions</h1>
        <a href="/transactions/export{{with .Query}}?q={{urlquery .}}{{end}}"
           class="inline-flex items-center px-3 py-2 border border-gray-300 text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50">
            Export CSV
        </a>
    </div>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">ID</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Order</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Amount</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Method</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">When</th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr>
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-mono text-gray-500">{{truncate .ID 12}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-mono">
                        <a href="/orders/{{.OrderID}}" class="text-indigo-600 hover:text-indigo-500">{{truncate .OrderID 12}}</a>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Amount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Method}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{apiTime .CreatedAt}}</td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No transactions found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"shipping/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Shipping Zones</h1>

    {{template "flash" .}}

    <form action="/shipping/new" method="POST" class="bg-white shadow rounded-lg p-4 mb-6 flex items-end space-x-3">
        <div>
            <label for="name" class="block text-xs font-medium text-gray-500 mb-1">Name</label>
            <input type="text" name="name" id="name" required
                   class="block w-48 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="rate" class="block text-xs font-medium text-gray-500 mb-1">Rate</label>
            <input type="number" step="0.01" min="0" name="rate" id="rate" required
                   class="block w-24 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="delivery_days" class="block text-xs font-medium text-gray-500 mb-1">Days</label>
            <input type="number" min="0" name="delivery_days" id="delivery_days"
                   class="block w-20 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <label class="flex items-center text-sm text-gray-700 pb-1">
            <input type="checkbox" name="active" checked class="mr-1 rounded border-gray-300"> Active
        </label>
        <button type="submit" class="px-3 py-1.5 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Add</button>
    </form>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Regions</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Rate</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Delivery</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="zone-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{join .Regions ", "}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Rate}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.DeliveryDays}} days</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm">
                        <button hx-delete="/shipping/{{.ID}}"
                                hx-target="#zone-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this shipping zone?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No shipping zones found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"discounts/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Discounts</h1>
        <a href="/discounts/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-indigo-600 hover:bg-indigo-700">
            Add Discount
        </a>
    </div>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Code</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Percent</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Window</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="discount-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-mono font-medium text-gray-900">{{.Code}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{percent .Percent}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{formatDate .StartDate}} &rarr; {{formatDate .EndDate}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        {{$status := .Status $.Now}}
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass $status}}">{{$status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm space-x-2">
                        <a href="/discounts/{{.ID}}/edit" class="text-indigo-600 hover:text-indigo-500">Edit</a>
                        <button hx-delete="/discounts/{{.ID}}"
                                hx-target="#discount-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this discount?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No discounts found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"discounts/form": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">{{if .Discount}}Edit Discount{{else}}Add Discount{{end}}</h1>

    {{template "flash" .}}

    <form action="{{if .Discount}}/discounts/{{.Discount.ID}}/edit{{else}}/discounts/new{{end}}" method="POST" class="bg-white shadow sm:rounded-lg">
        <div class="px-4 py-5 sm:p-6 space-y-6">
            <div>
                <label for="code" class="block text-sm font-medium text-gray-700">Code</label>
                <input type="text" name="code" id="code" required value="{{with .Discount}}{{.Code}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm font-mono">
            </div>
            <div>
                <label for="percent" class="block text-sm font-medium text-gray-700">Percent off</label>
                <input type="number" step="0.1" min="0" max="100" name="percent" id="percent" required value="{{with .Discount}}{{.Percent}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
            <div class="grid grid-cols-2 gap-4">
                <div>
                    <label for="start_date" class="block text-sm font-medium text-gray-700">Start</label>
                    <input type="date" name="start_date" id="start_date" value="{{with .Discount}}{{dateInput .StartDate}}{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
                <div>
                    <label for="end_date" class="block text-sm font-medium text-gray-700">End</label>
                    <input type="date" name="end_date" id="end_date" value="{{with .Discount}}{{dateInput .EndDate}}{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
            </div>
            <label class="flex items-center text-sm text-gray-700">
                <input type="checkbox" name="active" {{if .Discount}}{{if .Discount.IsActive}}checked{{end}}{{else}}checked{{end}}
                       class="mr-2 rounded border-gray-300"> Active
            </label>
        </div>
        <div class="px-4 py-3 bg-gray-50 text-right sm:px-6">
            <a href="/discounts" class="inline-flex justify-center py-2 px-4 border border-gray-300 shadow-sm text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50 mr-3">Cancel</a>
            <button type="submit" class="inline-flex justify-center py-2 px-4 border border-transparent shadow-sm text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"plans/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Subscription Plans</h1>

    {{template "flash" .}}

    <form action="/plans/new" method="POST" class="bg-white shadow rounded-lg p-4 mb-6 flex items-end space-x-3">
        <div>
            <label for="name" class="block text-xs font-medium text-gray-500 mb-1">Name</label>
            <input type="text" name="name" id="name" required
                   class="block w-48 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="price" class="block text-xs font-medium text-gray-500 mb-1">Price</label>
            <input type="number" step="0.01" min="0" name="price" id="price" required
                   class="block w-24 px-2 py-1 text-sm border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="interval" class="block text-xs font-medium text-gray-500 mb-1">Interval</label>
            <select name="interval" id="interval" class="block w-28 px-2 py-1 text-sm border border-gray-300 rounded-md">
                <option value="month">Monthly</option>
                <option value="year">Yearly</option>
            </select>
        </div>
        <div>
            <label for="status" class="block text-xs font-medium text-gray-500 mb-1">Status</label>
            <select name="status" id="status" class="block w-28 px-2 py-1 text-sm border border-gray-300 rounded-md">
                <option value="active">Active</option>
                <option value="inactive">Inactive</option>
            </select>
        </div>
        <button type="submit" class="px-3 py-1.5 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Add</button>
    </form>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Price</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Interval</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Members</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="plan-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Price}}/{{.Interval}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Interval}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.MembersCount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm">
                        <button hx-delete="/plans/{{.ID}}"
                                hx-target="#plan-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this plan?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No plans found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"members/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Members</h1>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Member</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Plan</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Renewal</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="member-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap">
                        <div class="text-sm font-medium text-gray-900">{{.Name}}</div>
                        <div class="text-xs text-gray-500">{{.Email}}</div>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.PlanName}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{apiTime .RenewalDate}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm space-x-2">
                        <button hx-post="/members/{{.ID}}/send-renewal"
                                hx-swap="none"
                                hx-confirm="Send a renewal reminder to {{.Email}}?"
                                class="text-indigo-600 hover:text-indigo-500">Send reminder</button>
                        <button hx-delete="/members/{{.ID}}"
                                hx-target="#member-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this member?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No members found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"toys/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Toys</h1>
        <a href="/toys/new" class="inline-flex items-center px-4 py-2 border border-transparent text-sm font-medium rounded-md shadow-sm text-white bg-indigo-600 hover:bg-indigo-700">
            Add Toy
        </a>
    </div>

    {{template "flash" .}}
    {{template "searchbar" .}}

    <div class="grid grid-cols-1 gap-4 sm:grid-cols-2">
        {{range .Items}}
        <div id="toy-{{.ID}}" class="bg-white shadow rounded-lg p-4">
            <div class="flex items-start justify-between">
                <div class="flex items-center">
                    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="" class="h-16 w-16 rounded object-cover mr-4">{{end}}
                    <div>
                        <p class="text-sm font-medium text-gray-900">{{.Name}}</p>
                        <p class="text-xs text-gray-500">Ages {{.AgeRange}}</p>
                        <span class="mt-1 inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </div>
                </div>
                <div class="text-right text-sm text-gray-500">
                    {{.AvailableUnits}}/{{.TotalUnits}} available
                </div>
            </div>
            <div class="mt-4 flex items-center justify-between">
                <form hx-post="/toys/{{.ID}}/available-units" class="flex items-center space-x-1">
                    <input type="number" name="available_units" value="{{.AvailableUnits}}" min="0" max="{{.TotalUnits}}"
                           class="w-16 px-1 py-0.5 text-sm border border-gray-300 rounded">
                    <button type="submit" class="text-xs text-indigo-600 hover:text-indigo-500">Set units</button>
                </form>
                <div class="space-x-2 text-sm">
                    <a href="/toys/{{.ID}}/edit" class="text-indigo-600 hover:text-indigo-500">Edit</a>
                    <button hx-delete="/toys/{{.ID}}"
                            hx-target="#toy-{{.ID}}"
                            hx-swap="outerHTML"
                            hx-confirm="Delete this toy?"
                            class="text-red-600 hover:text-red-500">Delete</button>
                </div>
            </div>
        </div>
        {{else}}
        <div class="col-span-2 bg-white shadow rounded-lg px-4 py-8 text-center text-sm text-gray-500">No toys found</div>
        {{end}}
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,

	"toys/form": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">{{if .Toy}}Edit Toy{{else}}Add Toy{{end}}</h1>

    {{template "flash" .}}

    <form action="{{if .Toy}}/toys/{{.Toy.ID}}/edit{{else}}/toys/new{{end}}" method="POST" enctype="multipart/form-data" class="bg-white shadow sm:rounded-lg">
        <div class="px-4 py-5 sm:p-6 space-y-6">
            <div>
                <label for="name" class="block text-sm font-medium text-gray-700">Name</label>
                <input type="text" name="name" id="name" required value="{{with .Toy}}{{.Name}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
            <div>
                <label for="age_range" class="block text-sm font-medium text-gray-700">Age range</label>
                <input type="text" name="age_range" id="age_range" placeholder="3-6" value="{{with .Toy}}{{.AgeRange}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
            <div class="grid grid-cols-2 gap-4">
                <div>
                    <label for="total_units" class="block text-sm font-medium text-gray-700">Total units</label>
                    <input type="number" min="0" name="total_units" id="total_units" value="{{with .Toy}}{{.TotalUnits}}{{else}}1{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
                <div>
                    <label for="available_units" class="block text-sm font-medium text-gray-700">Available units</label>
                    <input type="number" min="0" name="available_units" id="available_units" value="{{with .Toy}}{{.AvailableUnits}}{{else}}1{{end}}"
                           class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
                </div>
            </div>
            {{if .Uploads}}
            <div>
                <label for="image" class="block text-sm font-medium text-gray-700">Photo</label>
                <input type="file" name="image" id="image" accept="image/*"
                       class="mt-1 block w-full text-sm text-gray-500">
            </div>
            {{end}}
            <div>
                <label for="image_url" class="block text-sm font-medium text-gray-700">Image URL</label>
                <input type="url" name="image_url" id="image_url" value="{{with .Toy}}{{.ImageURL}}{{end}}"
                       class="mt-1 block w-full border-gray-300 rounded-md shadow-sm focus:ring-indigo-500 focus:border-indigo-500 sm:text-sm">
            </div>
        </div>
        <div class="px-4 py-3 bg-gray-50 text-right sm:px-6">
            <a href="/toys" class="inline-flex justify-center py-2 px-4 border border-gray-300 shadow-sm text-sm font-medium rounded-md text-gray-700 bg-white hover:bg-gray-50 mr-3">Cancel</a>
            <button type="submit" class="inline-flex justify-center py-2 px-4 border border-transparent shadow-sm text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"courses/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Courses</h1>

    {{template "searchbar" .}}

    <div class="bg-white shadow overflow-hidden sm:rounded-md">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Title</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Instructor</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Price</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Enrollments</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase tracking-wider">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="bg-white divide-y divide-gray-200">
                {{range .Items}}
                <tr id="course-{{.ID}}">
                    <td class="px-6 py-4 whitespace-nowrap text-sm font-medium text-gray-900">{{.Title}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.Instructor}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-900">{{money .Price}}</td>
                    <td class="px-6 py-4 whitespace-nowrap text-sm text-gray-500">{{.EnrollmentsCount}}</td>
                    <td class="px-6 py-4 whitespace-nowrap">
                        <span class="inline-flex items-center px-2.5 py-0.5 rounded-full text-xs font-medium {{badgeClass .Status}}">{{.Status}}</span>
                    </td>
                    <td class="px-6 py-4 whitespace-nowrap text-right text-sm">
                        <button hx-delete="/courses/{{.ID}}"
                                hx-target="#course-{{.ID}}"
                                hx-swap="outerHTML"
                                hx-confirm="Delete this course?"
                                class="text-red-600 hover:text-red-500">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-sm text-gray-500">No courses found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{template "pagination" .}}
</div>
{{end}}`,
}
