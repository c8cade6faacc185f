package export

import (
	"bytes"
	"html/template"
	"recipeserver/models"
	"time"
)

// renderWidth is the fixed width of the composed card in CSS pixels.
const renderWidth = 700

type cardData struct {
	Recipe models.Recipe
	Year   int
}

var cardTmpl = template.Must(
	template.New("card").
		Funcs(template.FuncMap{
			"step": func(i int) int { return i + 1 },
		}).
		Parse(cardHTML),
)

// ComposeHTML builds the styled document fragment for a recipe: title,
// description, ingredient list and numbered instructions.
func ComposeHTML(recipe models.Recipe) (string, error) {
	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, cardData{Recipe: recipe, Year: time.Now().Year()}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const chefHatIcon = `<img src="data:image/svg+xml;base64,PHN2ZyBmaWxsPSIjRkY3MDQzIiB2aWV3Qm94PSIwIDAgMjQwIDI0MCIgd2lkdGg9IjQ4IiBoZWlnaHQ9IjQ4Ij48Y2lyY2xlIGN4PSIxMjAiIGN5PSIxMCIgcj0iOSIgdG9sZXJhbmNlPSI0Ii8+PHBhdGggZD0iTTEyMCA3OGMtMzguNiAwLTcwIDMxLjQtNzAgNzBIMTIwYTEwIDEwIDAgMTAwIDIwaDQwYzAtMzguNi0zMS40LTcwLTcwLTd6IiBmaWxsPSIjRkZGRkZGIi8+PC9zdmc+" alt="Chef Hat" style="display:block;width:48px;margin:0 auto 20px auto;" />`

const cardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600&family=Lora:wght@700&display=swap" rel="stylesheet">
</head>
<body style="margin:0;padding:0;width:700px;">
<div style="
  background: linear-gradient(135deg, #faf7f2 0%, #f6fafd 100%);
  border-radius: 24px;
  box-shadow: 0 12px 40px rgba(90, 129, 170, 0.15);
  font-family: 'Lora', serif;
  padding: 48px 36px;
  max-width: 600px;
  margin: 32px auto;
  color: #222;
">
  ` + chefHatIcon + `
  <h1 style="font-family: 'Lora', serif; font-size: 2.3rem; font-weight: 700; color: #FF7043; text-align: center; margin-bottom: 8px; letter-spacing:0.5px;">
    {{.Recipe.Name}}
  </h1>
  <p style="font-size: 1.15rem; text-align: center; color:#555; margin-bottom: 22px; font-family: 'Inter', sans-serif;">
    {{.Recipe.ShortDescription}}
  </p>
  <hr style="border:none; border-top:1.5px solid #FF704380; margin:24px 0 12px;" />
  <h2 style="font-size: 1.2rem; font-weight: 600; color: #66BB6A; font-family:'Lora',serif; margin-bottom:10px; letter-spacing:1px;">
    Ingredients
  </h2>
  <ul style="font-size: 1.08rem; margin-bottom: 20px; padding-left: 18px; color:#333; font-family:'Inter',sans-serif;">
    {{range .Recipe.Ingredients}}<li style="margin-bottom: 7px; line-height: 1.5;"><span style="background:#fffbe6; padding:1.5px 8px;border-radius:12px;">{{.}}</span></li>
    {{end}}
  </ul>
  <h2 style="font-size: 1.2rem; font-weight: 600; color: #66BB6A; font-family:'Lora',serif; margin-bottom:10px; letter-spacing:1px;">
    Instructions
  </h2>
  <ol style="font-size: 1.05rem; color:#39424e; margin-left:22px; font-family:'Inter',sans-serif;">
    {{range $i, $s := .Recipe.Steps}}<li style="margin-bottom: 15px; line-height:1.7;"><span style="background:#e1f5e5; padding:2px 7px; border-radius:8px; margin-right:8px; color:#218c54; font-weight:500;">Step {{step $i}}:</span> {{$s}}</li>
    {{end}}
  </ol>
  <hr style="border:none; border-top:1px dashed #bababa80; margin:30px 0 10px;" />
  <p style="text-align:center; font-size:0.95rem; color:#999; margin-top:22px;">
    &copy; {{.Year}} Recipe Viewer.
  </p>
</div>
</body>
</html>`
