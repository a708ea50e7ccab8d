package http

// appShellHTML es la página mínima que carga el cliente; toda ruta fuera de
// /api la devuelve tal cual y el enrutamiento ocurre en el navegador.
const appShellHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>CloudCollect</title>
    <style>
      body { margin: 0; font-family: Inter, system-ui, sans-serif; }
      .loading {
        display: flex;
        align-items: center;
        justify-content: center;
        min-height: 100vh;
        flex-direction: column;
        background: linear-gradient(135deg, #f0f9ff 0%, #ffffff 50%, #f0fdfa 100%);
      }
      .spinner {
        width: 32px;
        height: 32px;
        border: 3px solid #e5e7eb;
        border-top: 3px solid #3b82f6;
        border-radius: 50%;
        animation: spin 1s linear infinite;
        margin-bottom: 16px;
      }
      @keyframes spin {
        0% { transform: rotate(0deg); }
        100% { transform: rotate(360deg); }
      }
      h1 { color: #111827; margin: 0 0 8px; }
      p { color: #4b5563; margin: 0; }
    </style>
  </head>
  <body>
    <div id="root">
      <div class="loading">
        <div class="spinner"></div>
        <h1>CloudCollect</h1>
        <p>Loading application...</p>
      </div>
    </div>
  </body>
</html>
`
