package main

import "net/http"

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// indexHTML is a minimal canvas viewer: fetches /api/map, paints cells by
// class, and regenerates over the websocket when a new seed is entered.
const indexHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>forgeview</title>
<style>
 body { font-family: monospace; background: #14161a; color: #cfd2d6; margin: 1rem; }
 canvas { image-rendering: pixelated; border: 1px solid #333; }
 input { width: 8rem; }
</style></head>
<body>
<h3>forgeview</h3>
<label>seed <input id="seed" type="number" value="7"></label>
<button id="gen">generate</button>
<span id="status"></span>
<div><canvas id="map" width="128" height="128" style="width:512px;height:512px"></canvas></div>
<script>
const colors = (cell) => {
  if (cell.ramp) return [200, 170, 90];
  if (cell.class === 2) return [40, 40, 48];      // unwalkable
  if (cell.class === 3) return [70, 100, 70];     // unbuildable
  const e = cell.elevation;
  return [40 + e / 2, 70 + e / 2, 40 + e / 3];    // ground by elevation
};
const draw = (md) => {
  const cv = document.getElementById("map");
  cv.width = md.width; cv.height = md.height;
  const ctx = cv.getContext("2d");
  const img = ctx.createImageData(md.width, md.height);
  md.terrain.forEach((row, y) => row.forEach((cell, x) => {
    const [r, g, b] = colors(cell);
    const i = (y * md.width + x) * 4;
    img.data[i] = r; img.data[i+1] = g; img.data[i+2] = b; img.data[i+3] = 255;
  }));
  ctx.putImageData(img, 0, 0);
  document.getElementById("status").textContent =
    " " + md.name + " · " + md.spawns.length + " spawns · " + md.ramps.length + " ramps";
};
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.onmessage = (ev) => draw(JSON.parse(ev.data));
document.getElementById("gen").onclick = () => {
  const seed = parseInt(document.getElementById("seed").value, 10) || 0;
  if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify({seed}));
};
fetch("/api/map").then(r => r.json()).then(draw);
</script>
</body>
</html>`
