package handlers

// dashboardHTML is the single-page dashboard. Every section is redrawn from
// the /ws stream; report links open the server-rendered report pages.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Poultry Management System</title>
<style>
  body { margin: 0; font-family: Arial, sans-serif; display: flex; min-height: 100vh; color: #1f2937; }
  nav { width: 220px; background: #14532d; color: #fff; padding: 16px 0; }
  nav h1 { font-size: 16px; padding: 0 16px 12px; margin: 0; border-bottom: 1px solid #166534; }
  nav a { display: block; padding: 10px 16px; color: #d1fae5; text-decoration: none; cursor: pointer; }
  nav a.active, nav a:hover { background: #166534; color: #fff; }
  main { flex: 1; padding: 24px; background: #f9fafb; }
  section { display: none; }
  section.active { display: block; }
  .cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 12px; }
  .card { background: #fff; border: 1px solid #e5e7eb; border-radius: 8px; padding: 12px; }
  .card .value { font-size: 24px; font-weight: bold; }
  .band-optimal, .status-online { color: #15803d; }
  .band-medium, .status-warning, .sev-warning { color: #b45309; }
  .band-low, .status-offline, .sev-critical { color: #b91c1c; }
  .sev-info { color: #1d4ed8; }
  table { width: 100%; border-collapse: collapse; background: #fff; }
  th, td { text-align: left; padding: 8px; border-bottom: 1px solid #e5e7eb; }
  .unread { font-weight: bold; }
  #conn { font-size: 12px; padding: 8px 16px; color: #a7f3d0; }
</style>
</head>
<body>
<nav>
  <h1>Poultry Management</h1>
  <a data-page="climate" class="active">Climate</a>
  <a data-page="supply">Supply</a>
  <a data-page="motion">Motion</a>
  <a data-page="devices">Devices</a>
  <a data-page="alerts">Alerts <span id="unread"></span></a>
  <a data-page="reports">Reports</a>
  <div id="conn">connecting...</div>
</nav>
<main>
  <section id="climate" class="active">
    <h2>Climate</h2>
    <div class="cards" id="climate-cards"></div>
    <h3>Light sensors</h3>
    <div class="cards" id="light-cards"></div>
  </section>
  <section id="supply">
    <h2>Water and feed</h2>
    <div class="cards" id="supply-cards"></div>
  </section>
  <section id="motion">
    <h2>Animal activity</h2>
    <div class="cards" id="motion-cards"></div>
    <table><thead><tr><th>Zone</th><th>Activity</th><th>Last detection</th></tr></thead><tbody id="zones"></tbody></table>
  </section>
  <section id="devices">
    <h2>Devices</h2>
    <table><thead><tr><th>Id</th><th>Name</th><th>Type</th><th>Status</th></tr></thead><tbody id="device-rows"></tbody></table>
  </section>
  <section id="alerts">
    <h2>Alerts</h2>
    <p id="alert-counts"></p>
    <table><thead><tr><th>Severity</th><th>Title</th><th>Description</th><th>Source</th><th>Time</th></tr></thead><tbody id="alert-rows"></tbody></table>
  </section>
  <section id="reports">
    <h2>Reports</h2>
    <table><tbody id="report-rows"></tbody></table>
  </section>
</main>
<script>
(function () {
  var sections = ["climate", "supply", "motion", "devices", "alerts", "general"];

  document.querySelectorAll("nav a[data-page]").forEach(function (link) {
    link.addEventListener("click", function () {
      document.querySelectorAll("nav a, section").forEach(function (el) { el.classList.remove("active"); });
      link.classList.add("active");
      document.getElementById(link.dataset.page).classList.add("active");
    });
  });

  function text(v) { return String(v).replace(/[&<>"]/g, function (c) { return "&#" + c.charCodeAt(0) + ";"; }); }
  function fixed(v) { return Number(v).toFixed(1); }
  function card(label, value, cls) {
    return '<div class="card"><div>' + text(label) + '</div><div class="value ' + (cls || "") + '">' + text(value) + '</div></div>';
  }
  function band(r) {
    var pct = r.max > 0 ? r.value / r.max * 100 : 0;
    return pct > 70 ? "optimal" : pct > 30 ? "medium" : "low";
  }

  document.getElementById("report-rows").innerHTML = sections.map(function (s) {
    return '<tr><td>' + s + '</td><td><a href="/reports/' + s + '" target="_blank">View</a></td>' +
      '<td><a href="/reports/' + s + '/export" target="_blank">Export PDF</a></td></tr>';
  }).join("");

  function renderSnapshot(st) {
    var c = st.climate;
    document.getElementById("climate-cards").innerHTML =
      card("Temperature", fixed(c.temperature_c) + " °C") +
      card("Humidity", fixed(c.humidity_pct) + " %") +
      card("Air quality", fixed(c.air_quality_pct) + " %");
    document.getElementById("light-cards").innerHTML = c.light_sensors.map(function (r) {
      return card(r.name, Math.round(r.value) + " lx", "band-" + band(r));
    }).join("");
    var s = st.supply;
    document.getElementById("supply-cards").innerHTML = s.water_tanks.concat(s.feed_silos).map(function (r) {
      return card(r.name, fixed(r.value) + " %", "band-" + band(r));
    }).join("");
    var m = st.motion;
    document.getElementById("motion-cards").innerHTML =
      card("Activity", fixed(m.activity_pct) + " %") +
      card("Active zones", m.active_zones) +
      card("Noise", fixed(m.noise_db) + " dB");
    document.getElementById("zones").innerHTML = m.zones.map(function (z) {
      return '<tr><td>' + text(z.name) + '</td><td>' + z.activity + '%</td><td>' +
        (z.last_detection ? new Date(z.last_detection).toLocaleTimeString() : "-") + '</td></tr>';
    }).join("");
    document.getElementById("device-rows").innerHTML = st.devices.map(function (d) {
      return '<tr><td>' + text(d.id) + '</td><td>' + text(d.name) + '</td><td>' + text(d.type) +
        '</td><td class="status-' + d.status + '">' + d.status + '</td></tr>';
    }).join("");
  }

  function renderAlerts(data) {
    var n = data.counts;
    document.getElementById("unread").textContent = n.unread > 0 ? "(" + n.unread + ")" : "";
    document.getElementById("alert-counts").textContent =
      n.total + " total, " + n.unread + " unread, " + n.critical + " critical, " +
      n.warning + " warning, " + n.info + " info";
    document.getElementById("alert-rows").innerHTML = data.alerts.map(function (a) {
      return '<tr class="' + (a.read ? "" : "unread") + '"><td class="sev-' + a.severity + '">' + a.severity +
        '</td><td>' + text(a.title) + '</td><td>' + text(a.description) + '</td><td>' + text(a.source) +
        '</td><td>' + new Date(a.timestamp).toLocaleString() + '</td></tr>';
    }).join("");
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    var status = document.getElementById("conn");
    ws.onopen = function () { status.textContent = "live"; };
    ws.onclose = function () { status.textContent = "reconnecting..."; setTimeout(connect, 3000); };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.error) { status.textContent = msg.error; return; }
      if (msg.type === "snapshot") { renderSnapshot(msg.data); }
      if (msg.type === "alerts") { renderAlerts(msg.data); }
    };
  }
  connect();
})();
</script>
</body>
</html>
`
