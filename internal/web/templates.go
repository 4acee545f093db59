package web

// Page templates are package consts parsed once at server construction.
// Keeping them in source means the binary stays self-contained, the same
// property the catalog file gives storage.

const baseStyle = `
  body { font-family: sans-serif; margin: 2rem auto; max-width: 56rem; padding: 0 1rem; color: #222; }
  h1 { margin-bottom: 0.25rem; }
  form.upload label { display: block; margin: 0.5rem 0; }
  form.upload input[type=text], form.upload textarea { width: 24rem; max-width: 100%; }
  form.search { margin: 1rem 0; }
  form.search input[type=text] { width: 20rem; max-width: 100%; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
  th { background: #f5f5f5; }
  td form { display: inline; margin-left: 0.5rem; }
  .banner { background: #ffe0e0; border: 1px solid #c00; padding: 0.5rem 1rem; }
  .muted { color: #777; }
  pre { background: #f5f5f5; padding: 1rem; overflow-x: auto; }
`

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>vidkeeper</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <h1>vidkeeper</h1>
  <p class="muted">A small catalog of video metadata.</p>

  {{if .Error}}<p class="banner">{{.Error}}</p>{{end}}

  <h2>Upload a video</h2>
  <form class="upload" action="/upload" method="POST">
    <label>Title <input type="text" name="title" value="{{.Form.Title}}"></label>
    <label>Description <textarea name="description" rows="3">{{.Form.Description}}</textarea></label>
    <label>Uploader <input type="text" name="uploader" value="{{.Form.Uploader}}"></label>
    <label>Tags <input type="text" name="tags" value="{{.Form.Tags}}" placeholder="comma, separated"></label>
    <button type="submit">Upload</button>
  </form>

  <h2>Videos</h2>
  <form class="search" action="/" method="GET">
    <input type="text" name="q" value="{{.Query}}" placeholder="search title, description, tags">
    <button type="submit">Search</button>
    {{if .Query}}<a href="/">clear</a>{{end}}
  </form>

  {{if .Videos}}
  <table>
    <tr><th>ID</th><th>Title</th><th>Uploader</th><th>Tags</th><th>Uploaded</th><th>Actions</th></tr>
    {{range .Videos}}
    <tr>
      <td>{{.ID}}</td>
      <td><a href="/videos/{{.ID}}">{{.Title}}</a></td>
      <td>{{.Uploader}}</td>
      <td>{{.Tags}}</td>
      <td>{{.Uploaded}}</td>
      <td>
        <a href="/videos/{{.ID}}">View</a>
        <form action="/videos/{{.ID}}/delete" method="POST" onsubmit="return confirm('Delete video id={{.ID}}?');">
          <button type="submit">Delete</button>
        </form>
      </td>
    </tr>
    {{end}}
  </table>
  {{else if .Query}}
  <p>No results</p>
  {{else}}
  <p>No videos uploaded yet.</p>
  {{end}}
</body>
</html>`

const videoHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Video.Title}} - vidkeeper</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <h1>{{.Video.Title}}</h1>
  <p class="muted">id={{.Video.ID}}, uploaded by {{.Video.Uploader}} at {{.Video.Uploaded}}</p>

  <pre>{{.JSON}}</pre>

  <p><a href="/">Back to catalog</a></p>
  <form action="/videos/{{.Video.ID}}/delete" method="POST" onsubmit="return confirm('Delete video id={{.Video.ID}}?');">
    <button type="submit">Delete</button>
  </form>
</body>
</html>`

const notFoundHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Not found - vidkeeper</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <h1>Not found</h1>
  <p>Video id={{.ID}} not found.</p>
  <p><a href="/">Back to catalog</a></p>
</body>
</html>`

const errorHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Error - vidkeeper</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <h1>Something went wrong</h1>
  <p>{{.Message}}</p>
  <p><a href="/">Back to catalog</a></p>
</body>
</html>`
