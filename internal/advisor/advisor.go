package advisor

import (
	"fmt"
	"strings"

	"github.com/appseed/cli/internal/output"
	"github.com/appseed/cli/internal/project"
	"github.com/appseed/cli/internal/templates"
)

// Ports the generated projects listen on.
const (
	DockerPort = 5085
	FlaskPort  = 5000
	DjangoPort = 8000
)

// Advise returns the next steps for opts on platform p.
// It has no side effects; the same inputs always produce the same text.
func Advise(opts project.Options, p Platform) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(output.StyleHeading.Render(" Next Steps: "))
	b.WriteString("\n\n")

	family := familyOf(opts.Template)

	switch {
	case opts.UseDocker:
		writeDocker(&b, opts)
	case p.IsWindows() && family == templates.FamilyFlask:
		writeWindowsFlask(&b, opts)
	case p.IsWindows() && family == templates.FamilyDjango:
		writeWindowsDjango(&b, opts)
	case !p.IsWindows():
		writePOSIX(&b, opts)
	}

	return b.String()
}

func familyOf(id string) templates.Family {
	t, err := templates.Get(id)
	if err != nil {
		return ""
	}
	return t.Family
}

func cmd(b *strings.Builder, line string) {
	b.WriteString("    ")
	b.WriteString(output.StyleCommand.Render(line))
	b.WriteString("\n")
}

func comment(b *strings.Builder, text string) {
	b.WriteString("    ")
	b.WriteString(output.StyleDim.Render(text))
	b.WriteString("\n")
}

func blank(b *strings.Builder) {
	b.WriteString("\n")
}

func browse(b *strings.Builder, port int) {
	url := fmt.Sprintf("http://localhost:%d", port)
	b.WriteString("    And open your browser at: ")
	b.WriteString(output.StyleURL.Render(url))
	b.WriteString("\n\n")
}

func writeDocker(b *strings.Builder, opts project.Options) {
	cmd(b, "cd "+opts.FolderName)
	cmd(b, "docker-compose up --build")
	blank(b)
	browse(b, DockerPort)
}

func writeInstall(b *strings.Builder, opts project.Options, activate string) {
	comment(b, "# Install dependencies")
	cmd(b, "cd "+opts.FolderName)
	cmd(b, "virtualenv env")
	cmd(b, activate)
	cmd(b, "pip install -r requirements.txt")
	blank(b)
}

func writeFlaskRun(b *strings.Builder) {
	comment(b, "# Run the app")
	cmd(b, "flask run")
	comment(b, "# or with https")
	cmd(b, "flask run --cert=adhoc")
	blank(b)
	browse(b, FlaskPort)
}

func writeWindowsFlask(b *strings.Builder, opts project.Options) {
	writeInstall(b, opts, `.\env\Scripts\activate`)

	comment(b, "# CMD")
	cmd(b, "set FLASK_APP=run.py")
	cmd(b, "set FLASK_ENV=development")
	blank(b)
	comment(b, "# Powershell")
	cmd(b, `$env:FLASK_APP = ".\run.py"`)
	cmd(b, `$env:FLASK_ENV = "development"`)
	blank(b)

	writeFlaskRun(b)
}

func writeWindowsDjango(b *strings.Builder, opts project.Options) {
	writeInstall(b, opts, `.\env\Scripts\activate`)

	comment(b, "# Run the app")
	cmd(b, "python manage.py runserver")
	blank(b)
	browse(b, DjangoPort)
}

func writePOSIX(b *strings.Builder, opts project.Options) {
	writeInstall(b, opts, "source env/bin/activate")

	comment(b, "# Set environment variables")
	cmd(b, "export FLASK_APP=run.py")
	cmd(b, "export FLASK_ENV=development")
	blank(b)

	writeFlaskRun(b)
}
